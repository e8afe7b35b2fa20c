package fault

import "github.com/ib-77/ropx/pkg/rop"

// Error is one value of an Enum: the active variant plus, for wrapping
// variants, the failure it was built from.
type Error[K comparable] struct {
	owner *Enum[K]
	kind  K
	text  string
	cause error
}

var _ rop.Describable = Error[string]{}

func (e Error[K]) Kind() K {
	return e.kind
}

// Enum returns the name of the enum the error belongs to.
func (e Error[K]) Enum() string {
	if e.owner == nil {
		return ""
	}
	return e.owner.name
}

// Error describes the active variant: the fixed message of a local variant,
// or the description of the wrapped cause.
func (e Error[K]) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.text
}

// Cause is nil for local variants.
func (e Error[K]) Cause() error {
	return e.cause
}

func (e Error[K]) Unwrap() error {
	return e.cause
}

// Is matches another Error of the same Enum definition and variant, whatever
// their causes. Enums sharing a name are still different enums.
func (e Error[K]) Is(target error) bool {
	t, ok := target.(Error[K])
	return ok && t.owner == e.owner && t.kind == e.kind
}
