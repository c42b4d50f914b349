package logger

import "context"

type runKey int

const (
	runIDKey runKey = iota
	modeKey
)

// WithRun stores the batch run id and mode (scan, dry-run, apply) on ctx; empty values are skipped
func WithRun(ctx context.Context, runID, mode string) context.Context {
	if runID != "" {
		ctx = context.WithValue(ctx, runIDKey, runID)
	}
	if mode != "" {
		ctx = context.WithValue(ctx, modeKey, mode)
	}
	return ctx
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// C is the root logger with run_id and mode from ctx
func C(ctx context.Context) *Logger {
	c := Get().With()
	if id := RunID(ctx); id != "" {
		c = c.Str("run_id", id)
	}
	if m, _ := ctx.Value(modeKey).(string); m != "" {
		c = c.Str("mode", m)
	}
	l := c.Logger()
	return &l
}
