package rop

// Causer is implemented by errors that link to the lower-level failure
// they were built from.
type Causer interface {
	// Cause returns the underlying error or nil for a root failure
	Cause() error
}

// Describable is the capability every error reported by this module satisfies:
// a human-readable message plus an optional cause link.
type Describable interface {
	error
	Causer
}

// ResultProvider exposes the successful value of a container.
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any, E error] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithPresence defines an interface for types that may hold no value at all
type WithPresence[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
	// IsSome returns true if a value is present
	IsSome() bool
}

var (
	_ WithError[int, error] = Result[int, error]{}
	_ WithPresence[int]     = Option[int]{}
)
