// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions form the core building blocks for error-aware
// pipelines: failures skip every later step and keep their error type unless a
// step converts it explicitly.
//
// Highlights:
// - Succeed/Fail: construct results
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: chain a step that can fail (flat-map)
// - Map/MapErr/DoubleMap: transform the success track, the failure track, or both
// - Try/TryAs: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Or: recover from a failure with an alternative result
// - Finally: reduce to a concrete value via success/error handlers
// - ToOption/ErrOption: bridges to rop.Option
// - Collect/Partition/FilterSuccesses: work over slices of results
package solo
