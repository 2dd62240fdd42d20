package parse

import (
	"sync"

	"github.com/ardnew/odatauri/optional"
)

// Or tries each parser in order and returns the first success.
// Earlier alternatives shadow later ones.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		for _, p := range ps {
			if r := p(c); r.OK {
				return r
			}
		}

		return Fail[T](c)
	}
}

// Optional always succeeds, reporting whether p matched.
func Optional[T any](p Parser[T]) Parser[optional.Optional[T]] {
	return func(c Cursor) Result[optional.Optional[T]] {
		if r := p(c); r.OK {
			return Ok(optional.Some(r.Value), r.Rest)
		}

		return Ok(optional.None[T](), c)
	}
}

// Many applies p as often as it matches and never fails.
// Repetition also stops when p matches without consuming input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		items, rest := many(c, p, Unbounded)

		return Ok(items, rest)
	}
}

// Repeat applies p at least min and at most max times ([Unbounded] for no
// upper limit). It stops greedily at max and fails when fewer than min
// repetitions matched.
func Repeat[T any](p Parser[T], min, max int) Parser[Range[T]] {
	return func(c Cursor) Result[Range[T]] {
		items, rest := many(c, p, max)
		if len(items) < min {
			return Fail[Range[T]](c)
		}

		return Ok(newRange(items, min, max), rest)
	}
}

func many[T any](c Cursor, p Parser[T], max int) ([]T, Cursor) {
	var items []T

	for max == Unbounded || len(items) < max {
		r := p(c)
		if !r.OK || r.Rest.pos == c.pos {
			break
		}

		items = append(items, r.Value)
		c = r.Rest
	}

	return items, c
}

// Bind runs p and, if it succeeds, runs the parser returned by f on the
// remainder. Failure of either rewinds to the original cursor.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(c Cursor) Result[B] {
		a := p(c)
		if !a.OK {
			return Fail[B](c)
		}

		b := f(a.Value)(a.Rest)
		if !b.OK {
			return Fail[B](c)
		}

		return b
	}
}

// Map converts the value produced by p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c Cursor) Result[B] {
		return As(p(c), f)
	}
}

// Not succeeds without consuming input when p fails at the cursor.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(c Cursor) Result[struct{}] {
		if p(c).OK {
			return Fail[struct{}](c)
		}

		return Ok(struct{}{}, c)
	}
}

// And succeeds without consuming input when p matches at the cursor.
func And[T any](p Parser[T]) Parser[struct{}] {
	return func(c Cursor) Result[struct{}] {
		if !p(c).OK {
			return Fail[struct{}](c)
		}

		return Ok(struct{}{}, c)
	}
}

// Recognize returns the input consumed by p as one token.
func Recognize[T any](p Parser[T]) Parser[Token] {
	return func(c Cursor) Result[Token] {
		r := p(c)
		if !r.OK {
			return Fail[Token](c)
		}

		return Ok(c.Span(r.Rest), r.Rest)
	}
}

// NonEmpty fails when p succeeds without consuming input.
func NonEmpty[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		r := p(c)
		if !r.OK || r.Rest.pos == c.pos {
			return Fail[T](c)
		}

		return r
	}
}

// Nested guards p with the recursion limit (see [Cursor.Enter]).
func Nested[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		if !c.Enter() {
			return Fail[T](c)
		}
		defer c.Leave()

		return p(c)
	}
}

// Lazy defers building a parser until its first use and then reuses it.
// It lets mutually recursive rules refer to each other regardless of
// declaration order.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)

	return func(c Cursor) Result[T] { return get()(c) }
}
