// Package optional provides a value that may or may not be present.
package optional

// Optional holds a value of type T together with a presence flag.
// The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool { return o.present }

// Value returns the held value, or the zero value of T when absent.
func (o Optional[T]) Value() T { return o.value }

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// Or returns the held value, or fallback when absent.
func (o Optional[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}

	v := o.value

	return &v
}
