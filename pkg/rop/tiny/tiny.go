package tiny

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

type Chain[T any, E error] struct {
	ctx context.Context
	res rop.Result[T, E]
}

func Start[T any, E error](ctx context.Context, r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T, error] {
	return Start(ctx, rop.Ok(v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Result()) {
			return c
		}
	}
}

func (c Chain[T, E]) RepeatChainUntil(inC func(ctx context.Context, t T) Chain[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = inC(c.ctx, c.res.Result())

		if c.res.IsFailure() || !until(c.ctx, c.res.Result()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T, E]) WhileChain(inC func(ctx context.Context, t T) Chain[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Result()) {
		c = inC(c.ctx, c.res.Result())
	}
	return c
}

// Or returns the first successful chain, or the first failure when none succeeded.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// OrElse recovers from a failure; the alternative is only built when needed.
func (c Chain[T, E]) OrElse(onFailure func(ctx context.Context, err E) rop.Result[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onFailure(c.ctx, c.res.Err())}
}

// And returns the first failure among c and required, or the last of them when all succeeded.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	last := c
	for _, ch := range required {
		if ch.res.IsFailure() {
			return Chain[T, E]{ctx: c.ctx, res: ch.res}
		}
		last = Chain[T, E]{ctx: c.ctx, res: ch.res}
	}
	return last
}

// ThenTry composes functions that return (T, E), like repo calls.
// A nil or zero E means success.
func (c Chain[T, E]) ThenTry(try func(ctx context.Context, t T) (T, E)) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	u, err := try(c.ctx, c.res.Result())
	return Chain[T, E]{ctx: c.ctx, res: rop.FromPair(u, err)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Result())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, E) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
