package parse

// Seq tracks an in-progress sequence of parsers.
// Create one with [Begin] and finish it with [End].
type Seq struct {
	start Cursor
	cur   Cursor
	bad   bool
}

// Begin starts a sequence at c.
func Begin(c Cursor) Seq { return Seq{start: c, cur: c} }

// OK reports whether every step so far has matched.
func (s *Seq) OK() bool { return !s.bad }

// Cursor returns the position after the last successful step.
func (s *Seq) Cursor() Cursor { return s.cur }

// Consumed reports whether the steps so far consumed any input.
func (s *Seq) Consumed() bool { return s.cur.pos != s.start.pos }

// Abort marks the sequence as failed.
func (s *Seq) Abort() { s.bad = true }

// Step applies a mandatory parser. On mismatch the sequence fails and the
// zero value is returned.
func Step[T any](s *Seq, p Parser[T]) (v T) {
	if s.bad {
		return v
	}

	r := p(s.cur)
	if !r.OK {
		s.bad = true

		return v
	}

	s.cur = r.Rest

	return r.Value
}

// Maybe applies an optional parser, returning the zero value on mismatch.
// Use it for symbols whose node type is already a pointer.
func Maybe[T any](s *Seq, p Parser[T]) (v T) {
	if s.bad {
		return v
	}

	if r := p(s.cur); r.OK {
		s.cur = r.Rest

		return r.Value
	}

	return v
}

// Opt applies an optional parser, returning nil on mismatch.
// Use it for optional tokens and other value types.
func Opt[T any](s *Seq, p Parser[T]) *T {
	if s.bad {
		return nil
	}

	if r := p(s.cur); r.OK {
		s.cur = r.Rest

		return &r.Value
	}

	return nil
}

// Star applies p zero or more times.
func Star[T any](s *Seq, p Parser[T]) []T {
	if s.bad {
		return nil
	}

	items, rest := many(s.cur, p, Unbounded)
	s.cur = rest

	return items
}

// Times applies p between min and max times ([Unbounded] for no maximum).
func Times[T any](s *Seq, p Parser[T], min, max int) Range[T] {
	if s.bad {
		return Range[T]{}
	}

	items, rest := many(s.cur, p, max)
	if len(items) < min {
		s.bad = true

		return Range[T]{}
	}

	s.cur = rest

	return newRange(items, min, max)
}

// Reject fails the sequence when p matches at the current position.
// It never consumes input.
func Reject[T any](s *Seq, p Parser[T]) {
	if !s.bad && p(s.cur).OK {
		s.bad = true
	}
}

// Expect fails the sequence unless p matches at the current position.
// It never consumes input.
func Expect[T any](s *Seq, p Parser[T]) {
	if !s.bad && !p(s.cur).OK {
		s.bad = true
	}
}

// End finishes the sequence, yielding v on success or failure at the
// starting cursor.
func End[T any](s *Seq, v T) Result[T] {
	if s.bad {
		return Fail[T](s.start)
	}

	return Ok(v, s.cur)
}
