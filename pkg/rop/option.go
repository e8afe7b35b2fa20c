package rop

import "fmt"

// Option holds either a present value (Some) or nothing (None).
// Absence is a normal outcome, not an error.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some of the pointed value otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
// Callers propagate absence with a guard:
//
//	v, ok := o.Get()
//	if !ok {
//		return rop.None[U]()
//	}
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse calls orElse only when the option is empty.
func (o Option[T]) UnwrapOrElse(orElse func() T) T {
	if o.some {
		return o.value
	}
	return orElse()
}

func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Or returns o when it holds a value, alternative otherwise.
func (o Option[T]) Or(alternative Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alternative
}

// OrElse is the lazy form of Or.
func (o Option[T]) OrElse(alternative func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alternative()
}

// Xor returns the only present option of the two, None when both or neither are present.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

func (o Option[T]) Filter(keep func(v T) bool) Option[T] {
	if o.some && keep(o.value) {
		return o
	}
	return None[T]()
}

// Expect returns the value or panics with msg. Use it only where absence
// would be a programming error.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

func (o Option[T]) Unwrap() T {
	return o.Expect("called Unwrap on None")
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
