// Package erased unifies errors by boxing them behind one opaque handle.
//
// Any error can become an Error, and functions returning Result[T] accept
// failures of any type from deeper calls: Try and Lift erase them on the way
// up, with no conversion rule per source. The handle keeps the description and
// the cause of what it boxes, so erasing never changes what Error() reports.
//
// The price is discrimination. Once erased, callers can no longer switch on
// the kind of failure; getting the concrete type back needs errors.As through
// Unwrap. When callers must tell failures apart, declare a closed enum with
// package fault instead. The two strategies do not compose into one another:
// erasing an enum value keeps its message, and its kind is only reachable
// again through errors.As.
package erased
