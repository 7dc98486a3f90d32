package calculator

// Optional holds a value that may be absent. The zero value is absent, which
// keeps "not supplied" distinct from a supplied zero.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value was supplied
func (o Optional[T]) IsPresent() bool {
	return o.ok
}
