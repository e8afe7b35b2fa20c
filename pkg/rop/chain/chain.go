package chain

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any, E error] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T any, E error](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T, error] {
	return &Chain[T, error]{
		ctx:    ctx,
		result: rop.Ok(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U any, E error](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error), converting the error with convert
func ThenTry[T, U any, E error](c *Chain[T, E], tryOnSuccess func(context.Context, T) (U, error),
	convert func(error) E) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.TryAs(c.ctx, c.result, tryOnSuccess, convert),
	}
}

// Map chains a pure transformation function
func Map[T, U any, E error](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapErr moves the chain onto another error type
func MapErr[T any, E, F error](c *Chain[T, E], onError func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx:    c.ctx,
		result: solo.MapErr(c.ctx, c.result, onError),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T, E]) {
				onSuccess(ctx, result.Result())
			}),
	}
}

// Option drops the error and keeps only the success value
func (c *Chain[T, E]) Option() rop.Option[T] {
	return solo.ToOption(c.result)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any, E error](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
