// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Unlike tiny, every step may change the value type, and MapErr may change
// the error type. A failure skips all later steps and keeps its error.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - MapErr: transform the failure (E -> F)
// - Ensure: run side effects on success without changing the result
// - Option: drop the error side
// - Finally: collapse the chain into a final value via handlers
package chain
