package rop

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// NoError reports whether err stands for "no failure": a nil interface, a nil
// pointer-like value, or the zero value of a struct error type such as
// fault.Error or erased.Error.
func NoError(err error) bool {
	if IsNil(err) {
		return true
	}
	return reflect.ValueOf(err).IsZero()
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// CauseOf returns the error err was built from. Errors implementing Causer
// answer for themselves; other errors fall back to errors.Unwrap.
func CauseOf(err error) error {
	if IsNil(err) {
		return nil
	}
	if c, ok := err.(Causer); ok {
		cause := c.Cause()
		if IsNil(cause) {
			return nil
		}
		return cause
	}
	return errors.Unwrap(err)
}

// Causes walks the cause chain below err, nearest cause first.
// maxDepth <= 0 means no limit.
func Causes(err error, maxDepth int) []error {
	causes := make([]error, 0)
	for cause := CauseOf(err); cause != nil; cause = CauseOf(cause) {
		if maxDepth > 0 && len(causes) == maxDepth {
			break
		}
		causes = append(causes, cause)
	}
	return causes
}

// RootCause returns the deepest error of the chain, err itself when it has no cause.
func RootCause(err error) error {
	root := err
	for cause := CauseOf(err); cause != nil; cause = CauseOf(cause) {
		root = cause
	}
	return root
}
