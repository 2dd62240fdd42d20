package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var digits = NewCharset("DIGIT").AddRange('0', '9')

func TestCursor_Immutable(t *testing.T) {
	c := NewCursor("abc")
	d := c.Advance(2)

	require.Equal(t, 0, c.Pos())
	require.Equal(t, "abc", c.Remaining())
	require.Equal(t, 2, d.Pos())
	require.Equal(t, "c", d.Remaining())
	require.False(t, c.Equal(d))
	require.True(t, d.Equal(c.Advance(2)))
	require.False(t, c.Equal(NewCursor("abc")), "cursors over distinct inputs differ")

	require.Panics(t, func() { d.Advance(2) })
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name    string
		p       Parser[Token]
		input   string
		ok      bool
		text    string
		encoded bool
	}{
		{"lit match", Lit("$top"), "$top=1", true, "$top", false},
		{"lit case", Lit("$top"), "$TOP=1", false, "", false},
		{"fold case", Fold("$top"), "$TOP=1", true, "$TOP", false},
		{"delim plain", Delim("/", "%2F"), "/x", true, "/", false},
		{"delim encoded", Delim("/", "%2F"), "%2fx", true, "%2f", true},
		{"delim mismatch", Delim("/", "%2F"), "%2Ex", false, "", false},
		{"class", Class(digits), "7a", true, "7", false},
		{"class mismatch", Class(digits), "a7", false, "", false},
		{"one of order", OneOf(false, "ab", "abc"), "abc", true, "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.input)
			r := tt.p(c)
			require.Equal(t, tt.ok, r.OK)

			if !tt.ok {
				require.True(t, r.Rest.Equal(c))

				return
			}

			require.Equal(t, tt.text, r.Value.Text)
			require.Equal(t, tt.encoded, r.Value.Encoded)
			require.Equal(t, len(tt.text), r.Rest.Pos())
		})
	}
}

func TestOr_FirstAlternativeWins(t *testing.T) {
	p := Or(Lit("ab"), Lit("abc"))
	r := p(NewCursor("abc"))

	require.True(t, r.OK)
	require.Equal(t, "ab", r.Value.Text)
	require.Equal(t, "c", r.Rest.Remaining())

	q := Or(Lit("x"), Lit("y"))
	c := NewCursor("z")
	require.True(t, q(c).Rest.Equal(c))
}

func TestOptional(t *testing.T) {
	p := Optional(Lit("-"))

	r := p(NewCursor("-1"))
	require.True(t, r.OK)
	require.True(t, r.Value.IsPresent())
	require.Equal(t, 1, r.Rest.Pos())

	c := NewCursor("1")
	r = p(c)
	require.True(t, r.OK)
	require.False(t, r.Value.IsPresent())
	require.True(t, r.Rest.Equal(c))
}

func TestMany(t *testing.T) {
	r := Many(Class(digits))(NewCursor("123x"))
	require.True(t, r.OK)
	require.Len(t, r.Value, 3)
	require.Equal(t, "x", r.Rest.Remaining())

	r = Many(Class(digits))(NewCursor("x"))
	require.True(t, r.OK)
	require.Empty(t, r.Value)

	empty := Many(Lit(""))(NewCursor("x"))
	require.True(t, empty.OK, "zero-width repetition terminates")
}

func TestRepeat(t *testing.T) {
	p := Repeat(Class(digits), 1, 3)

	tests := []struct {
		input string
		ok    bool
		n     int
		rest  string
	}{
		{"1", true, 1, ""},
		{"123", true, 3, ""},
		{"1234", true, 3, "4"},
		{"x", false, 0, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := p(NewCursor(tt.input))
			require.Equal(t, tt.ok, r.OK)
			require.Equal(t, tt.rest, r.Rest.Remaining())

			if tt.ok {
				require.Equal(t, tt.n, r.Value.Len())
				require.Equal(t, 1, r.Value.Min())
				require.Equal(t, 3, r.Value.Max())
				require.Len(t, r.Value.Elements(), tt.n)
			}
		})
	}
}

func TestRange_BoundsViolationPanics(t *testing.T) {
	require.Panics(t, func() { newRange([]int{1, 2, 3}, 0, 2) })
	require.Panics(t, func() { newRange([]int{}, 1, Unbounded) })
	require.NotPanics(t, func() { newRange([]int{1, 2, 3}, 1, Unbounded) })
}

func TestBindMap(t *testing.T) {
	sign := Map(Lit("-"), func(Token) int { return -1 })
	p := Bind(sign, func(s int) Parser[int] {
		return Map(Class(digits), func(d Token) int { return s * int(d.Text[0]-'0') })
	})

	r := p(NewCursor("-7"))
	require.True(t, r.OK)
	require.Equal(t, -7, r.Value)

	c := NewCursor("-x")
	r = p(c)
	require.False(t, r.OK)
	require.True(t, r.Rest.Equal(c))
}

func TestLookahead(t *testing.T) {
	c := NewCursor("ab")

	r := Not(Lit("b"))(c)
	require.True(t, r.OK)
	require.True(t, r.Rest.Equal(c))

	require.False(t, Not(Lit("a"))(c).OK)
	require.True(t, And(Lit("a"))(c).OK)
	require.True(t, And(Lit("a"))(c).Rest.Equal(c))
}

func TestRecognizeNonEmpty(t *testing.T) {
	r := Recognize(Many(Class(digits)))(NewCursor("42!"))
	require.True(t, r.OK)
	require.Equal(t, Token{Text: "42"}, r.Value)

	require.False(t, NonEmpty(Many(Class(digits)))(NewCursor("!")).OK)
}

func TestSeq(t *testing.T) {
	type pair struct {
		A Token
		B *Token
		C []Token
		D Range[Token]
	}

	run := func(input string) Result[*pair] {
		s := Begin(NewCursor(input))
		n := &pair{
			A: Step(&s, Lit("a")),
			B: Opt(&s, Lit("b")),
			C: Star(&s, Lit("c")),
			D: Times(&s, Class(digits), 2, 2),
		}
		Reject(&s, Class(digits))

		return End(&s, n)
	}

	r := run("abcc12")
	require.True(t, r.OK)
	require.NotNil(t, r.Value.B)
	require.Len(t, r.Value.C, 2)
	require.Equal(t, 2, r.Value.D.Len())

	r = run("a12")
	require.True(t, r.OK)
	require.Nil(t, r.Value.B)

	for _, bad := range []string{"x12", "a1", "a123"} {
		c := NewCursor(bad)
		s := Begin(c)
		Step(&s, Lit("a"))
		Times(&s, Class(digits), 2, 2)
		Reject(&s, Class(digits))

		res := End(&s, 0)
		assert.False(t, res.OK, bad)
		assert.Equal(t, 0, res.Rest.Pos(), bad)
	}
}

func TestDiagnostics_FurthestFailure(t *testing.T) {
	p := Or(
		Bind(Lit("ab"), func(Token) Parser[Token] { return Lit("c") }),
		Bind(Lit("ab"), func(Token) Parser[Token] { return Lit("d") }),
		Lit("x"),
	)

	c := NewCursor("abz")
	require.False(t, p(c).OK)

	d := c.Diagnostics()
	require.Equal(t, 2, d.Offset)
	require.Equal(t, []string{`"c"`, `"d"`}, d.Expected)
	require.False(t, d.DepthExceeded)
}

func TestNested_DepthLimit(t *testing.T) {
	var expr Parser[int]
	expr = Lazy(func() Parser[int] {
		return Nested(Or(
			Map(Class(digits), func(Token) int { return 0 }),
			Bind(Lit("("), func(Token) Parser[int] {
				return Bind(expr, func(n int) Parser[int] {
					return Map(Lit(")"), func(Token) int { return n + 1 })
				})
			}),
		))
	})

	c := NewCursor("(((1)))", WithMaxDepth(8))
	r := expr(c)
	require.True(t, r.OK)
	require.Equal(t, 3, r.Value)
	require.False(t, c.Diagnostics().DepthExceeded)

	c = NewCursor("(((1)))", WithMaxDepth(3))
	require.False(t, expr(c).OK)
	require.True(t, c.Diagnostics().DepthExceeded)
}

func TestEnterChain_SeparateAllowance(t *testing.T) {
	c := NewCursor("x", WithMaxDepth(1))

	require.True(t, c.Enter())

	for range chainFactor {
		require.True(t, c.EnterChain())
	}

	require.False(t, c.Diagnostics().DepthExceeded)
	require.False(t, c.EnterChain())
	require.True(t, c.Diagnostics().DepthExceeded)

	c = NewCursor("x", WithMaxDepth(1))
	require.True(t, c.EnterChain())
	c.LeaveChain()
	require.True(t, c.Enter())
	require.False(t, c.Enter())
}

func TestCharset(t *testing.T) {
	cs := NewCharset("hex").AddRange('0', '9').Add("abcdef")
	require.Equal(t, 16, cs.Len())
	require.True(t, cs.Has('a'))
	require.False(t, cs.Has('g'))
	require.Equal(t, 3, cs.Span("0f9z"))

	u := NewCharset("u").Union(cs, NewCharset("x").Add("x"))
	require.Equal(t, 17, u.Len())
	require.Equal(t, "x[x]", NewCharset("x").Add("x").String())
}

func BenchmarkClassMany(b *testing.B) {
	p := Many(Class(digits))
	input := "12345678901234567890x"

	for b.Loop() {
		p(NewCursor(input))
	}
}
