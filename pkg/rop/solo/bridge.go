package solo

import "github.com/ib-77/ropx/pkg/rop"

// ToOption keeps the success value and discards the error.
func ToOption[T any, E error](input rop.Result[T, E]) rop.Option[T] {
	if input.IsSuccess() {
		return rop.Some(input.Result())
	}
	return rop.None[T]()
}

// ErrOption keeps the error and discards the success value.
func ErrOption[T any, E error](input rop.Result[T, E]) rop.Option[E] {
	if input.IsFailure() {
		return rop.Some(input.Err())
	}
	return rop.None[E]()
}

// Collect turns a slice of results into a result of a slice.
// The first failure, in input order, fails the whole collection.
func Collect[T any, E error](inputs []rop.Result[T, E]) rop.Result[[]T, E] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.IsFailure() {
			return rop.Fail[[]T](in.Err())
		}
		values = append(values, in.Result())
	}
	return rop.Success[[]T, E](values)
}

// Partition splits results into successful values and errors, keeping input order.
func Partition[T any, E error](inputs []rop.Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(inputs))
	errs := make([]E, 0)
	for _, in := range inputs {
		if in.IsSuccess() {
			values = append(values, in.Result())
		} else {
			errs = append(errs, in.Err())
		}
	}
	return values, errs
}

func FilterSuccesses[T any, E error](inputs []rop.Result[T, E]) []T {
	values, _ := Partition(inputs)
	return values
}
