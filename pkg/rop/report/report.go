package report

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropx/pkg/rop"
)

// Chain returns err followed by its causes, outermost first. The walk stops
// at the first nil cause or after MaxDepth errors.
func Chain(ctx context.Context, err error) []error {
	chain, _ := walk(ctx, err)
	return chain
}

func walk(ctx context.Context, err error) ([]error, bool) {
	cfg := ConfigFrom(ctx, DefaultConfig())

	chain := make([]error, 0)
	for cur := err; !rop.IsNil(cur); cur = rop.CauseOf(cur) {
		if len(chain) == cfg.MaxDepth {
			return chain, true
		}
		chain = append(chain, cur)
	}
	return chain, false
}

// Describe renders err and its causes on one line. A cause is skipped when
// its message equals the one before it, or ends it behind a ": " or the
// configured separator, so fmt.Errorf("...: %w") wrappers and wrapping enum
// variants are not printed twice.
func Describe(ctx context.Context, err error) string {
	cfg := ConfigFrom(ctx, DefaultConfig())
	return strings.Join(messages(Chain(ctx, err), cfg.Separator), cfg.Separator)
}

func messages(chain []error, separator string) []string {
	out := make([]string, 0, len(chain))
	for _, e := range chain {
		msg := e.Error()
		if n := len(out); n > 0 && repeats(out[n-1], msg, separator) {
			continue
		}
		out = append(out, msg)
	}
	return out
}

func repeats(prev, msg, separator string) bool {
	if prev == msg {
		return true
	}
	if strings.HasSuffix(prev, ": "+msg) {
		return true
	}
	return separator != "" && strings.HasSuffix(prev, separator+msg)
}

// Report is a loggable snapshot of one failure and its causes.
type Report struct {
	ID        uuid.UUID
	Error     string
	Causes    []string
	Truncated bool
}

var _ zapcore.ObjectMarshaler = Report{}

// New snapshots err under a fresh trace id.
func New(ctx context.Context, err error) Report {
	chain, truncated := walk(ctx, err)
	r := Report{
		ID:        uuid.New(),
		Causes:    make([]string, 0),
		Truncated: truncated,
	}
	if len(chain) == 0 {
		return r
	}

	r.Error = chain[0].Error()
	for _, c := range chain[1:] {
		r.Causes = append(r.Causes, c.Error())
	}
	return r
}

func (r Report) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", r.ID.String())
	enc.AddString("error", r.Error)
	if r.Truncated {
		enc.AddBool("truncated", true)
	}
	return enc.AddArray("causes", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, c := range r.Causes {
			arr.AppendString(c)
		}
		return nil
	}))
}

// Log writes err as one error entry and returns the trace id it was logged
// under. Nothing is written for a nil or zero err and uuid.Nil is returned.
func Log(ctx context.Context, logger *zap.Logger, msg string, err error) uuid.UUID {
	if rop.NoError(err) {
		return uuid.Nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := ConfigFrom(ctx, DefaultConfig())
	r := New(ctx, err)
	logger.Error(msg, zap.Error(err), zap.Object(cfg.Field, r))
	return r.ID
}

// Tee logs the failure of r, if any, and passes r on unchanged.
func Tee[T any, E error](ctx context.Context, logger *zap.Logger, msg string,
	r rop.Result[T, E]) rop.Result[T, E] {

	if r.IsFailure() {
		Log(ctx, logger, msg, r.Err())
	}
	return r
}
