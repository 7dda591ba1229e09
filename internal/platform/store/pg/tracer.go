package pg

import (
	"context"
	"strings"

	"readathon/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one executed statement
type QueryEvent struct {
	SQL       string
	Args      any
	Err       error
	ElapsedUS int64
	Slow      bool
}

// QueryTracer receives an event per statement when tracing is on
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// compact collapses runs of whitespace so multiline SQL logs on one line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type zlTracer struct{ log logger.Logger }

// Tracer builds the standard zerolog-backed tracer. Its child logger is
// pinned to debug level so SQL stays visible regardless of the root level
func Tracer(root logger.Logger) QueryTracer {
	child := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: child}
}

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	entry := z.log.Info()
	if ev.Slow {
		entry = z.log.Warn()
	}

	entry.
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Err(ev.Err).
		Msg("pg query")
}
