// Package report turns failures into log entries.
//
// The rop packages never log; report is where a failure leaves the
// result world. It walks cause chains through rop.CauseOf, so it sees the
// causes of fault enums, erased handles and fmt.Errorf wrappers alike.
//
// Key operations:
//   - Chain: the error and its causes, outermost first, bounded by MaxDepth.
//   - Describe: the chain on one line, joined by Separator.
//   - New: a Report with a uuid trace id, loggable with zap.Object.
//   - Log and Tee: write a failure to a *zap.Logger under the configured field.
//
// Config comes from the environment (LoadConfig) and can be overridden per
// call with WithConfig.
package report
