package maybe

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
)

func Map[In, Out any](ctx context.Context, input rop.Option[In],
	onSome func(ctx context.Context, v In) Out) rop.Option[Out] {

	if v, ok := input.Get(); ok {
		return rop.Some(onSome(ctx, v))
	}
	return rop.None[Out]()
}

// Chain applies a step that may produce nothing and returns its option directly.
func Chain[In, Out any](ctx context.Context, input rop.Option[In],
	onSome func(ctx context.Context, v In) rop.Option[Out]) rop.Option[Out] {

	if v, ok := input.Get(); ok {
		return onSome(ctx, v)
	}
	return rop.None[Out]()
}

func Tee[T any](ctx context.Context, input rop.Option[T],
	onSome func(ctx context.Context, v T)) rop.Option[T] {

	if v, ok := input.Get(); ok {
		onSome(ctx, v)
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Option[In],
	onSome func(ctx context.Context, v In) Out,
	onNone func(ctx context.Context) Out) Out {

	if v, ok := input.Get(); ok {
		return onSome(ctx, v)
	}
	return onNone(ctx)
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip is Some only when both inputs are.
func Zip[A, B any](a rop.Option[A], b rop.Option[B]) rop.Option[Pair[A, B]] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return rop.Some(Pair[A, B]{First: av, Second: bv})
	}
	return rop.None[Pair[A, B]]()
}

func Flatten[T any](input rop.Option[rop.Option[T]]) rop.Option[T] {
	if inner, ok := input.Get(); ok {
		return inner
	}
	return rop.None[T]()
}

// Equal compares two options pointwise: both absent, or both present with equal values.
func Equal[T comparable](a, b rop.Option[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	return !aok || av == bv
}

// OkOr turns absence into a failure carrying err.
func OkOr[T any, E error](input rop.Option[T], err E) rop.Result[T, E] {
	if v, ok := input.Get(); ok {
		return rop.Success[T, E](v)
	}
	return rop.Fail[T](err)
}

// OkOrElse is the lazy form of OkOr.
func OkOrElse[T any, E error](ctx context.Context, input rop.Option[T],
	onNone func(ctx context.Context) E) rop.Result[T, E] {

	if v, ok := input.Get(); ok {
		return rop.Success[T, E](v)
	}
	return rop.Fail[T](onNone(ctx))
}

// Transpose turns an optional result into a result of an option.
// None maps to a successful None.
func Transpose[T any, E error](input rop.Option[rop.Result[T, E]]) rop.Result[rop.Option[T], E] {
	r, ok := input.Get()
	if !ok {
		return rop.Success[rop.Option[T], E](rop.None[T]())
	}
	if r.IsFailure() {
		return rop.Fail[rop.Option[T]](r.Err())
	}
	return rop.Success[rop.Option[T], E](rop.Some(r.Result()))
}

// Untranspose is the inverse of Transpose.
func Untranspose[T any, E error](input rop.Result[rop.Option[T], E]) rop.Option[rop.Result[T, E]] {
	if input.IsFailure() {
		return rop.Some(rop.Fail[T](input.Err()))
	}
	if v, ok := input.Result().Get(); ok {
		return rop.Some(rop.Success[T, E](v))
	}
	return rop.None[rop.Result[T, E]]()
}

func FirstOf[T any](values []T) rop.Option[T] {
	if len(values) == 0 {
		return rop.None[T]()
	}
	return rop.Some(values[0])
}

func Lookup[K comparable, V any](m map[K]V, key K) rop.Option[V] {
	if v, ok := m[key]; ok {
		return rop.Some(v)
	}
	return rop.None[V]()
}
