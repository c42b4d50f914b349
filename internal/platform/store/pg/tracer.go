package pg

import (
	"context"
	"strings"

	"filmnames/internal/platform/logger"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Affected  int64 // -1 for reads
	Err       error
	Slow      bool
}

// QueryTracer receives one event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement at info (warn when slow) on a "pg" child of base,
// tagged with the run id carried by ctx
func Tracer(base logger.Logger) QueryTracer {
	return runTracer{log: base.With().Str("component", "pg").Logger()}
}

type runTracer struct{ log logger.Logger }

func (t runTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	evt := t.log.Info()
	switch {
	case ev.Err != nil:
		evt = t.log.Error().Err(ev.Err)
	case ev.Slow:
		evt = t.log.Warn()
	}
	if id := logger.RunID(ctx); id != "" {
		evt = evt.Str("run_id", id)
	}
	if ev.Affected >= 0 {
		evt = evt.Int64("affected", ev.Affected)
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow).
		Str("sql", oneLine(ev.SQL)).
		Interface("args", ev.Args).
		Msg("pg query")
}

// oneLine trims the statement and folds its whitespace runs into single spaces
func oneLine(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
