package fault

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/ib-77/ropx/pkg/rop"
)

// Decl declares one variant of an Enum.
type Decl[K comparable] struct {
	kind    K
	message string
	wraps   bool
}

// Local declares a variant for a condition detected by the caller itself.
// Its description is the fixed message and it has no cause.
func Local[K comparable](kind K, message string) Decl[K] {
	return Decl[K]{kind: kind, message: message}
}

// Wrapping declares a variant that carries the failure it was built from.
// Its description is the description of that failure.
func Wrapping[K comparable](kind K) Decl[K] {
	return Decl[K]{kind: kind, wraps: true}
}

// Enum is the closed set of variants of one application error type.
// Variants and conversion rules are fixed at definition time, usually in
// package-level vars; an Enum is read-only afterwards.
type Enum[K comparable] struct {
	name     string
	order    []K
	variants map[K]Decl[K]
	rules    []rule[K]
}

type rule[K comparable] struct {
	from reflect.Type
	kind K
}

// Define builds the closed set. Duplicate kinds, local variants without a
// message or an empty set are definition errors and panic.
func Define[K comparable](name string, decls ...Decl[K]) *Enum[K] {
	if len(decls) == 0 {
		panic(fmt.Sprintf("fault: enum %s has no variants", name))
	}

	e := &Enum[K]{
		name:     name,
		order:    make([]K, 0, len(decls)),
		variants: make(map[K]Decl[K], len(decls)),
	}
	for _, d := range decls {
		if _, dup := e.variants[d.kind]; dup {
			panic(fmt.Sprintf("fault: enum %s declares variant %v twice", name, d.kind))
		}
		if !d.wraps && d.message == "" {
			panic(fmt.Sprintf("fault: local variant %v of enum %s needs a message", d.kind, name))
		}
		e.variants[d.kind] = d
		e.order = append(e.order, d.kind)
	}
	return e
}

func (e *Enum[K]) Name() string {
	return e.name
}

// Kinds lists the variants in declaration order.
func (e *Enum[K]) Kinds() []K {
	return slices.Clone(e.order)
}

func (e *Enum[K]) Has(kind K) bool {
	_, ok := e.variants[kind]
	return ok
}

// New builds a local variant.
func (e *Enum[K]) New(kind K) Error[K] {
	d := e.variant(kind)
	if d.wraps {
		panic(fmt.Sprintf("fault: variant %v of enum %s wraps a cause, use Wrap", kind, e.name))
	}
	return Error[K]{owner: e, kind: kind, text: d.message}
}

// Wrap builds a wrapping variant around cause.
func (e *Enum[K]) Wrap(kind K, cause error) Error[K] {
	d := e.variant(kind)
	if !d.wraps {
		panic(fmt.Sprintf("fault: variant %v of enum %s is local, use New", kind, e.name))
	}
	if rop.IsNil(cause) {
		panic(fmt.Sprintf("fault: variant %v of enum %s needs a cause", kind, e.name))
	}
	return Error[K]{owner: e, kind: kind, cause: cause}
}

func (e *Enum[K]) variant(kind K) Decl[K] {
	d, ok := e.variants[kind]
	if !ok {
		panic(fmt.Sprintf("fault: enum %s has no variant %v", e.name, kind))
	}
	return d
}

// Rule registers the conversion from the underlying error type From into the
// wrapping variant kind, and returns it. Binding one type to two variants
// panics; registering the same binding again is a no-op.
//
// The returned function plugs into rop.Try, solo.MapErr and friends:
//
//	var parseRule = fault.Rule[Kind, *strconv.NumError](Errors, KindParse)
//	n := rop.Try(s, parseInt(str), parseRule)
func Rule[K comparable, From error](e *Enum[K], kind K) func(From) Error[K] {
	if !e.variant(kind).wraps {
		panic(fmt.Sprintf("fault: variant %v of enum %s is local and cannot absorb errors", kind, e.name))
	}

	from := reflect.TypeFor[From]()
	registered := false
	for _, r := range e.rules {
		if r.from != from {
			continue
		}
		if r.kind != kind {
			panic(fmt.Sprintf("fault: %v is already converted to variant %v of enum %s", from, r.kind, e.name))
		}
		registered = true
	}
	if !registered {
		e.rules = append(e.rules, rule[K]{from: from, kind: kind})
	}

	return func(err From) Error[K] {
		return e.Wrap(kind, err)
	}
}

// Absorb converts err through the registered rules. An error of this enum is
// returned as it is. Otherwise the tree of err is walked depth-first,
// following both Unwrap forms so the branches of errors.Join are visited,
// and the first error matching a rule picks the variant; err itself becomes
// the cause so nothing above the match is dropped.
func (e *Enum[K]) Absorb(err error) (Error[K], bool) {
	if rop.IsNil(err) {
		return Error[K]{}, false
	}

	if own, ok := err.(Error[K]); ok && own.owner == e {
		return own, true
	}

	var kind K
	found := walk(err, func(cur error) bool {
		var ok bool
		kind, ok = e.match(cur)
		return ok
	})
	if !found {
		return Error[K]{}, false
	}
	return e.Wrap(kind, err), true
}

// walk visits err and everything it wraps, depth-first, until visit returns true.
func walk(err error, visit func(error) bool) bool {
	for !rop.IsNil(err) {
		if visit(err) {
			return true
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, branch := range u.Unwrap() {
				if walk(branch, visit) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
	return false
}

func (e *Enum[K]) match(err error) (K, bool) {
	t := reflect.TypeOf(err)
	for _, r := range e.rules {
		if r.from == t {
			return r.kind, true
		}
	}
	for _, r := range e.rules {
		if r.from.Kind() == reflect.Interface && t.Implements(r.from) {
			return r.kind, true
		}
	}
	var zero K
	return zero, false
}

// Check reports wrapping variants that no conversion rule reaches.
func (e *Enum[K]) Check() error {
	var errs []error
	for _, kind := range e.order {
		if !e.variants[kind].wraps {
			continue
		}
		reached := slices.ContainsFunc(e.rules, func(r rule[K]) bool { return r.kind == kind })
		if !reached {
			errs = append(errs, fmt.Errorf("fault: variant %v of enum %s has no conversion rule", kind, e.name))
		}
	}
	return errors.Join(errs...)
}

// Is reports whether err carries the variant kind of this enum anywhere in
// its tree, joined branches included.
func (e *Enum[K]) Is(err error, kind K) bool {
	return walk(err, func(cur error) bool {
		target, ok := cur.(Error[K])
		return ok && target.owner == e && target.kind == kind
	})
}
