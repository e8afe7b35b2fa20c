// Package fault builds application error types as closed sets of named
// variants.
//
// An Enum is declared once with Define. Each variant is either Local (a
// condition the caller detects itself, described by a fixed message, no cause)
// or Wrapping (built from a lower-level failure, described by that failure,
// which stays reachable through Cause and errors.Unwrap). Every underlying
// error type a function absorbs gets exactly one conversion rule, registered
// with Rule; the rule is an ordinary func(From) Error[K], so a missing rule is
// a compile error at the rop.Try call site rather than a runtime surprise.
//
//	type Kind int
//
//	const (
//		KindEmpty Kind = iota
//		KindParse
//	)
//
//	var (
//		Errors    = fault.Define("double", fault.Local(KindEmpty, "please use a vector with at least one element"), fault.Wrapping[Kind](KindParse))
//		parseRule = fault.Rule[Kind, *strconv.NumError](Errors, KindParse)
//	)
//
// A closed enum keeps every error kind distinguishable downstream (switch on
// Kind, Enum.Is) at the cost of naming every source up front. When sources
// are open-ended use package erased instead, which accepts any error but can
// no longer tell kinds apart without extra tagging.
package fault
