package parse

import (
	"slices"
	"strings"
)

// DefaultMaxDepth is the default limit on nested recursive rule activations.
const DefaultMaxDepth = 256

// chainFactor scales the depth limit into the allowance for rules that
// continue a path or operator chain (see [Cursor.EnterChain]).
const chainFactor = 64

// source is the state shared by every cursor derived from one input.
type source struct {
	text     string
	expected []string
	maxDepth int
	depth    int
	chain    int
	far      int
	overflow bool
}

// Option configures the cursor returned by [NewCursor].
type Option func(*source)

// WithMaxDepth limits the number of nested recursive rule activations.
// Values less than one select [DefaultMaxDepth].
func WithMaxDepth(n int) Option {
	return func(s *source) {
		if n < 1 {
			n = DefaultMaxDepth
		}

		s.maxDepth = n
	}
}

// Cursor is an immutable position in an input string.
// Advancing a cursor returns a new cursor and leaves the receiver unchanged.
// Two cursors are equal when they refer to the same input and position.
type Cursor struct {
	src *source
	pos int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string, opts ...Option) Cursor {
	src := &source{text: input, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(src)
	}

	return Cursor{src: src}
}

// Pos returns the byte offset of c in its input.
func (c Cursor) Pos() int { return c.pos }

// Input returns the complete input c was created from.
func (c Cursor) Input() string {
	if c.src == nil {
		return ""
	}

	return c.src.text
}

// Remaining returns the unconsumed input.
func (c Cursor) Remaining() string {
	if c.src == nil {
		return ""
	}

	return c.src.text[c.pos:]
}

// Len returns the number of unconsumed bytes.
func (c Cursor) Len() int { return len(c.Remaining()) }

// AtEnd reports whether all input has been consumed.
func (c Cursor) AtEnd() bool { return c.Len() == 0 }

// Equal reports whether c and o denote the same position in the same input.
func (c Cursor) Equal(o Cursor) bool { return c.src == o.src && c.pos == o.pos }

// Peek returns the next byte, if any.
func (c Cursor) Peek() (byte, bool) { return c.PeekAt(0) }

// PeekAt returns the byte i positions ahead of c, if any.
func (c Cursor) PeekAt(i int) (byte, bool) {
	rest := c.Remaining()
	if i < 0 || i >= len(rest) {
		return 0, false
	}

	return rest[i], true
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.Remaining(), s)
}

// HasPrefixFold is like [Cursor.HasPrefix] but ignores ASCII case.
func (c Cursor) HasPrefixFold(s string) bool {
	rest := c.Remaining()

	return len(rest) >= len(s) && strings.EqualFold(rest[:len(s)], s)
}

// Advance returns a cursor n bytes further along. It panics if fewer than n
// bytes remain.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 || n > c.Len() {
		panic("parse: advance beyond end of input")
	}

	return Cursor{src: c.src, pos: c.pos + n}
}

// Token returns the next n bytes as a token without advancing.
func (c Cursor) Token(n int) Token {
	return Token{Text: c.Remaining()[:n], Offset: c.pos}
}

// Span returns the input between c and end as a single token.
func (c Cursor) Span(end Cursor) Token {
	return Token{Text: c.src.text[c.pos:end.pos], Offset: c.pos}
}

// Expect records that the terminal described by what failed to match at c.
// Only the furthest failure position is retained.
func (c Cursor) Expect(what string) {
	s := c.src
	if s == nil {
		return
	}

	switch {
	case c.pos > s.far:
		s.far = c.pos
		s.expected = append(s.expected[:0], what)
	case c.pos == s.far:
		s.expected = append(s.expected, what)
	}
}

// Enter marks entry into a recursive rule. It returns false, and the input
// is flagged as too deeply nested, when the depth limit has been reached.
// Every successful Enter must be paired with [Cursor.Leave].
func (c Cursor) Enter() bool {
	s := c.src
	if s.overflow || s.depth >= s.maxDepth {
		s.overflow = true

		return false
	}

	s.depth++

	return true
}

// Leave marks exit from a recursive rule entered with [Cursor.Enter].
func (c Cursor) Leave() { c.src.depth-- }

// EnterChain marks entry into a rule that recurses to continue a flat
// sequence, such as the next segment of a path. Continuations do not count
// as nesting; they draw on a separate allowance of 64 times the depth limit
// that only bounds stack growth. Exhausting it flags the input the same way
// as [Cursor.Enter]. Every successful EnterChain must be paired with
// [Cursor.LeaveChain].
func (c Cursor) EnterChain() bool {
	s := c.src
	if s.overflow || s.chain >= s.maxDepth*chainFactor {
		s.overflow = true

		return false
	}

	s.chain++

	return true
}

// LeaveChain marks exit from a rule entered with [Cursor.EnterChain].
func (c Cursor) LeaveChain() { c.src.chain-- }

// Diagnostics describes why input was rejected.
type Diagnostics struct {
	// Expected lists, sorted and without duplicates, the terminals that
	// failed at Offset.
	Expected []string
	// Offset is the furthest input offset at which a terminal failed.
	Offset int
	// DepthExceeded is set when the nesting limit or the continuation
	// allowance was exhausted.
	DepthExceeded bool
}

// Diagnostics returns the failure information accumulated so far by every
// cursor sharing c's input.
func (c Cursor) Diagnostics() Diagnostics {
	if c.src == nil {
		return Diagnostics{}
	}

	exp := slices.Clone(c.src.expected)
	slices.Sort(exp)

	return Diagnostics{
		Expected:      slices.Compact(exp),
		Offset:        c.src.far,
		DepthExceeded: c.src.overflow,
	}
}
