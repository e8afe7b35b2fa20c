package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropx/pkg/rop"
)

func Succeed[T any](input T) rop.Res[T] {
	return rop.Ok(input)
}

func Fail[T any, E error](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

// Validate starts a result from input and checks it like AndValidate.
// The validation family builds plain errors from messages (errors.New,
// errors.Join), so it works on rop.Res only; use FailOnError to check
// results with a typed error.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Res[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

// AndValidate fails a successful input with errors.New(errMsg) when validate
// rejects it. Error-only, see Validate.
func AndValidate[T any](ctx context.Context, input rop.Res[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Res[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every check through Join and accumulates the failures
// with errors.Join. Error-only, see Validate.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Res[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Res[T]) rop.Res[T]) rop.Res[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Res[T]) rop.Res[T] {

			if current.IsFailure() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		inputsF...,
	)
}

// Switch chains a step that can itself fail with the same error type.
func Switch[In any, Out any, E error](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.Fail[Out](input.Err())
}

func Map[In any, Out any, E error](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Result()))
	}
	return rop.Fail[Out](input.Err())
}

// MapErr transforms the failure; successes pass through untouched.
func MapErr[T any, E error, F error](ctx context.Context,
	input rop.Result[T, E],
	onError func(ctx context.Context, err E) F) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.Success[T, F](input.Result())
	}
	return rop.Fail[T](onError(ctx, input.Err()))
}

func Tee[T any, E error](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any, E error](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r rop.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any, E error](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

// DoubleMap maps both tracks at once.
func DoubleMap[In any, Out any, E error, F error](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) F) rop.Result[Out, F] {

	if input.IsSuccess() {
		return rop.Success[Out, F](onSuccess(ctx, input.Result()))
	}
	return rop.Fail[Out](onError(ctx, input.Err()))
}

// Try calls a function written in the (value, error) convention.
func Try[In any, Out any](ctx context.Context, input rop.Res[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Res[Out] {
	return TryAs(ctx, input, onTryExecute, func(err error) error { return err })
}

// TryAs is Try with an explicit conversion rule from error to the result's error type.
func TryAs[In any, Out any, E error](ctx context.Context, input rop.Result[In, E],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	convert func(err error) E) rop.Result[Out, E] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out](convert(err))
		}

		return rop.Success[Out, E](out)
	}

	return rop.Fail[Out](input.Err())
}

// FailOnError fails input with the error maybeErr reports. A nil or zero
// error keeps input as it is.
func FailOnError[T any, E error](ctx context.Context, input rop.Result[T, E],
	maybeErr func(ctx context.Context, in T) E) rop.Result[T, E] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if !rop.NoError(err) {
			return rop.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

// Or tries alternative when input failed.
func Or[T any, E error, F error](ctx context.Context, input rop.Result[T, E],
	alternative func(ctx context.Context, err E) rop.Result[T, F]) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.Success[T, F](input.Result())
	}
	return alternative(ctx, input.Err())
}

func Finally[In, Out any, E error](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

// Join runs inputsF in order, passing each output through concat. It works
// on any error type. With breakOnError the first failure stops the run; a
// cancelled ctx stops it too.
func Join[T any, E error](ctx context.Context,
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T, E]) rop.Result[T, E],
	inputsF ...func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}

func Flatten[T any, E error](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	if input.IsSuccess() {
		return input.Result()
	}
	return rop.Fail[T](input.Err())
}
