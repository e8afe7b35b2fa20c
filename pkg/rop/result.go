package rop

import "fmt"

// Result is either a success holding a value or a failure holding a typed error.
type Result[T any, E error] struct {
	result    T
	err       E
	isSuccess bool
}

// Res is a Result whose failure side is a plain error.
type Res[T any] = Result[T, error]

func Success[T any, E error](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
	}
}

// Ok is Success for results whose failure side is a plain error.
func Ok[T any](r T) Res[T] {
	return Success[T, error](r)
}

func Fail[T any, E error](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
	}
}

// FromPair converts the (value, error) convention into a Result.
// A nil or zero err means success, see NoError.
func FromPair[T any, E error](r T, err E) Result[T, E] {
	if NoError(err) {
		return Success[T, E](r)
	}
	return Fail[T](err)
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the value and the error; the error is only meaningful on failure.
// Callers propagate a failure with a guard:
//
//	v, err := r.Get()
//	if r.IsFailure() {
//		return rop.Fail[U](convert(err))
//	}
func (r Result[T, E]) Get() (T, E) {
	return r.result, r.err
}

// Unpack returns the Go (value, error) pair, with a nil error on success.
func (r Result[T, E]) Unpack() (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	return r.result, r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.result
	}
	return def
}

func (r Result[T, E]) UnwrapOrElse(onError func(err E) T) T {
	if r.isSuccess {
		return r.result
	}
	return onError(r.err)
}

func (r Result[T, E]) UnwrapOrZero() T {
	return r.result
}

// Expect returns the value or panics with msg followed by the failure message.
// Use it only where a failure would be a programming error.
func (r Result[T, E]) Expect(msg string) T {
	if !r.isSuccess {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.result
}

func (r Result[T, E]) Unwrap() T {
	return r.Expect("called Unwrap on a failed result")
}

// ExpectErr returns the error or panics with msg when the result succeeded.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.isSuccess {
		panic(fmt.Sprintf("%s: %v", msg, r.result))
	}
	return r.err
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
