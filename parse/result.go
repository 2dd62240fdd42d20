package parse

// Result is the outcome of applying a [Parser] at a cursor.
//
// When OK is false, Value is the zero value of T and Rest is the cursor the
// parser was given.
type Result[T any] struct {
	Value T
	Rest  Cursor
	OK    bool
}

// Parser consumes a prefix of the input at a cursor.
// Parsers hold no mutable state and may be shared freely.
type Parser[T any] func(Cursor) Result[T]

// Ok returns a successful result.
func Ok[T any](v T, rest Cursor) Result[T] {
	return Result[T]{Value: v, Rest: rest, OK: true}
}

// Fail returns a failed result positioned at c.
func Fail[T any](c Cursor) Result[T] {
	return Result[T]{Rest: c}
}

// As converts the value of a successful result with conv.
func As[T, U any](r Result[T], conv func(T) U) Result[U] {
	if !r.OK {
		return Result[U]{Rest: r.Rest}
	}

	return Result[U]{Value: conv(r.Value), Rest: r.Rest, OK: true}
}

// Try applies p at c. On success it stores the value in dst and the
// remainder in rest and returns true; otherwise both are left untouched.
//
// Try is the building block of alternation rules whose node holds one
// pointer per alternative:
//
//	switch {
//	case parse.Try(c, &rest, &n.A, a):
//	case parse.Try(c, &rest, &n.B, b):
//	default:
//		return parse.Fail[*Node](c)
//	}
func Try[T any](c Cursor, rest *Cursor, dst *T, p Parser[T]) bool {
	r := p(c)
	if !r.OK {
		return false
	}

	*dst, *rest = r.Value, r.Rest

	return true
}
