package parse

import (
	"fmt"
	"strconv"
)

// Unbounded is the upper bound of a repetition without a maximum.
const Unbounded = -1

// Range is an ordered repetition whose length lies within [Min, Max].
// Only [Repeat] and [Times] construct non-empty ranges, and they do so after
// counting the matches, so consumers may rely on the bounds.
type Range[T any] struct {
	items    []T
	min, max int
}

func newRange[T any](items []T, min, max int) Range[T] {
	if n := len(items); n < min || (max != Unbounded && n > max) {
		panic(fmt.Sprintf(
			"parse: %d repetitions outside bounds [%d,%s]",
			n, min, boundString(max),
		))
	}

	return Range[T]{items: items, min: min, max: max}
}

func boundString(max int) string {
	if max == Unbounded {
		return "*"
	}

	return strconv.Itoa(max)
}

// Items returns the repeated values in input order.
// The returned slice must not be modified.
func (r Range[T]) Items() []T { return r.items }

// Len returns the number of repetitions.
func (r Range[T]) Len() int { return len(r.items) }

// At returns the i-th repetition.
func (r Range[T]) At(i int) T { return r.items[i] }

// Min returns the declared lower bound.
func (r Range[T]) Min() int { return r.min }

// Max returns the declared upper bound, or [Unbounded].
func (r Range[T]) Max() int { return r.max }

// Elements returns the repetitions as untyped values for generic traversal.
func (r Range[T]) Elements() []any {
	out := make([]any, len(r.items))
	for i, v := range r.items {
		out[i] = v
	}

	return out
}

// Repetition is implemented by every [Range] instantiation.
type Repetition interface {
	Elements() []any
}
