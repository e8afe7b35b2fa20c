package erased

import (
	"errors"
	"fmt"

	"github.com/ib-77/ropx/pkg/rop"
)

// Error is an opaque handle over any error. Only the description and the
// cause of the boxed error are reachable through it.
type Error struct {
	boxed error
}

var _ rop.Describable = Error{}

// Result is a rop.Result whose failures are erased.
type Result[T any] = rop.Result[T, Error]

// Erase boxes err. Erasing an Error returns it unchanged; erasing nil panics.
func Erase(err error) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	if rop.IsNil(err) {
		panic("erased: cannot erase a nil error")
	}
	return Error{boxed: err}
}

// New creates an erased leaf error.
func New(msg string) Error {
	return Error{boxed: errors.New(msg)}
}

func Errorf(format string, args ...any) Error {
	return Erase(fmt.Errorf(format, args...))
}

// Error returns the description of the boxed error.
func (e Error) Error() string {
	if e.boxed == nil {
		return "<nil>"
	}
	return e.boxed.Error()
}

// Cause returns the cause of the boxed error.
func (e Error) Cause() error {
	return rop.CauseOf(e.boxed)
}

// Unwrap exposes the boxed error to errors.Is and errors.As. It is the only
// way back to the concrete type.
func (e Error) Unwrap() error {
	return e.boxed
}

// Lift erases the failure side of any result.
func Lift[T any, E error](r rop.Result[T, E]) Result[T] {
	if r.IsSuccess() {
		return rop.Success[T, Error](r.Result())
	}
	return rop.Fail[T](Erase(r.Err()))
}

// Ok is Success for erased results.
func Ok[T any](v T) Result[T] {
	return rop.Success[T, Error](v)
}

// Fail erases err into a failed result.
func Fail[T any](err error) Result[T] {
	return rop.Fail[T](Erase(err))
}

// Try yields the value of r inside a rop.Do block, ending the block with the
// erased error otherwise. Any error type is accepted.
func Try[T any, E error](s *rop.Scope[Error], r rop.Result[T, E]) T {
	return rop.Try(s, r, func(err E) Error { return Erase(err) })
}

// TryPair is Try for functions in the (value, error) convention.
func TryPair[T any](s *rop.Scope[Error], v T, err error) T {
	return Try(s, rop.FromPair(v, err))
}
