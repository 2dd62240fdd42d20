package parse

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Lit matches s exactly (ABNF single-quoted literal).
func Lit(s string) Parser[Token] {
	want := strconv.Quote(s)

	return func(c Cursor) Result[Token] {
		if c.HasPrefix(s) {
			return Ok(c.Token(len(s)), c.Advance(len(s)))
		}

		c.Expect(want)

		return Fail[Token](c)
	}
}

// Fold matches s ignoring ASCII case (ABNF double-quoted literal).
func Fold(s string) Parser[Token] {
	want := strconv.Quote(s)

	return func(c Cursor) Result[Token] {
		if c.HasPrefixFold(s) {
			return Ok(c.Token(len(s)), c.Advance(len(s)))
		}

		c.Expect(want)

		return Fail[Token](c)
	}
}

// Delim matches a delimiter either as plain text or as one of its
// percent-encoded spellings. Hex digits in the encoded form match in either
// case. The token records which spelling was consumed.
func Delim(plain string, encoded ...string) Parser[Token] {
	want := strconv.Quote(plain)

	return func(c Cursor) Result[Token] {
		if plain != "" && c.HasPrefix(plain) {
			return Ok(c.Token(len(plain)), c.Advance(len(plain)))
		}

		for _, enc := range encoded {
			if c.HasPrefixFold(enc) {
				t := c.Token(len(enc))
				t.Encoded = true

				return Ok(t, c.Advance(len(enc)))
			}
		}

		c.Expect(want)

		return Fail[Token](c)
	}
}

// Charset is a set of bytes used by character-class terminals.
type Charset struct {
	bits *bitset.BitSet
	name string
}

// NewCharset returns an empty set described by name in diagnostics.
func NewCharset(name string) *Charset {
	return &Charset{bits: bitset.New(256), name: name}
}

// Add inserts every byte of chars.
func (cs *Charset) Add(chars string) *Charset {
	for i := range len(chars) {
		cs.bits.Set(uint(chars[i]))
	}

	return cs
}

// AddRange inserts every byte from lo to hi inclusive.
func (cs *Charset) AddRange(lo, hi byte) *Charset {
	for b := uint(lo); b <= uint(hi); b++ {
		cs.bits.Set(b)
	}

	return cs
}

// Union inserts every member of others.
func (cs *Charset) Union(others ...*Charset) *Charset {
	for _, o := range others {
		cs.bits.InPlaceUnion(o.bits)
	}

	return cs
}

// Has reports whether b is a member.
func (cs *Charset) Has(b byte) bool { return cs.bits.Test(uint(b)) }

// Name returns the description used in diagnostics.
func (cs *Charset) Name() string { return cs.name }

// Len returns the number of members.
func (cs *Charset) Len() int { return int(cs.bits.Count()) }

// Span returns the length of the longest prefix of s made of members.
func (cs *Charset) Span(s string) int {
	for i := range len(s) {
		if !cs.Has(s[i]) {
			return i
		}
	}

	return len(s)
}

// Class matches one byte that is a member of cs.
func Class(cs *Charset) Parser[Token] {
	return func(c Cursor) Result[Token] {
		if b, ok := c.Peek(); ok && cs.Has(b) {
			return Ok(c.Token(1), c.Advance(1))
		}

		c.Expect(cs.name)

		return Fail[Token](c)
	}
}

// EOF matches the end of input.
func EOF(c Cursor) Result[Token] {
	if c.AtEnd() {
		return Ok(Token{Offset: c.pos}, c)
	}

	c.Expect("end of input")

	return Fail[Token](c)
}

// OneOf matches the first of the given literals, in order, ignoring ASCII
// case when fold is set.
func OneOf(fold bool, lits ...string) Parser[Token] {
	return func(c Cursor) Result[Token] {
		for _, s := range lits {
			if (fold && c.HasPrefixFold(s)) || (!fold && c.HasPrefix(s)) {
				return Ok(c.Token(len(s)), c.Advance(len(s)))
			}
		}

		for _, s := range lits {
			c.Expect(strconv.Quote(s))
		}

		return Fail[Token](c)
	}
}

// String renders the set for tests and debugging.
func (cs *Charset) String() string {
	var b strings.Builder

	b.WriteString(cs.name)
	b.WriteByte('[')

	for i, ok := cs.bits.NextSet(0); ok; i, ok = cs.bits.NextSet(i + 1) {
		if i >= 0x20 && i < 0x7f {
			b.WriteByte(byte(i))
		} else {
			b.WriteString(`\x` + strconv.FormatUint(uint64(i), 16))
		}
	}

	b.WriteByte(']')

	return b.String()
}
