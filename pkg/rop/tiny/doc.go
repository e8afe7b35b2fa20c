// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of rop.Result values that keep one value and error type.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or (T, E)-returning functions
// - Map: transform the value
// - RepeatUntil/While and their Chain variants: loop while the chain succeeds
// - Or/OrElse/And: combine alternative or required chains
// - Ensure: trigger side effects per track
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
