package absence

import "fmt"

// Absential holds a value of type T, or nothing. It is the signature-level
// companion to Absent: "a T, or no value was supplied". The zero value is
// absent.
type Absential[T any] struct {
	value   T
	present bool
}

// Of returns an Absential holding v.
func Of[T any](v T) Absential[T] {
	return Absential[T]{value: v, present: true}
}

// NoValue returns an absent Absential. Equivalent to the zero value.
func NoValue[T any]() Absential[T] {
	return Absential[T]{}
}

// IsAbsent reports whether no value is held.
func (a Absential[T]) IsAbsent() bool {
	return !a.present
}

// Get returns the held value and whether one is present. When absent, the
// returned T is its zero value.
func (a Absential[T]) Get() (T, bool) {
	return a.value, a.present
}

// Or returns the held value, or fallback when absent.
func (a Absential[T]) Or(fallback T) T {
	if a.present {
		return a.value
	}
	return fallback
}

// String renders the held value, or the global sentinel's short form when
// absent.
func (a Absential[T]) String() string {
	if !a.present {
		return Singleton().String()
	}
	return fmt.Sprint(a.value)
}
