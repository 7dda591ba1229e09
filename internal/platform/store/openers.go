package store

import (
	"context"
	"fmt"
	"time"

	"readathon/internal/platform/store/pg"
)

const (
	pgPingAttempts = 20
	pgPingTimeout  = 3 * time.Second
	pgBackoffCap   = 2 * time.Second
)

// openPG dials postgres and wraps the pool in the sql adapter. The adapter
// is published on the Store only once the pool answers a ping
func openPG(ctx context.Context, conf Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if conf.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	pool := pg.Config{URL: conf.PG.URL, SlowMs: conf.PG.SlowQueryMs, MaxConns: conf.PG.MaxConns}
	client, err := pg.Open(ctx, pool, tracer, nil)
	if err != nil {
		return nil, err
	}
	if err := awaitPG(ctx, client); err != nil {
		client.Close()
		return nil, err
	}

	adapter := newPGAdapter(client)
	s.PG = adapter
	return adapter, nil
}

// awaitPG pings the pool directly so retries do not spam the query trace
func awaitPG(ctx context.Context, client *pg.PG) error {
	backoff := 150 * time.Millisecond

	var last error
	for attempt := 0; attempt < pgPingAttempts; attempt++ {
		toCtx, cancel := context.WithTimeout(ctx, pgPingTimeout)
		last = client.Pool.Ping(toCtx)
		cancel()

		switch {
		case last == nil:
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		}

		time.Sleep(backoff)
		if backoff *= 2; backoff > pgBackoffCap {
			backoff = pgBackoffCap
		}
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", pgPingAttempts, last)
}
