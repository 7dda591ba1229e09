// Package pg wraps pgxpool with query tracing and slow-query flagging
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config carries the pool settings read from the environment
type Config struct {
	URL      string
	SlowMs   int
	MaxConns int32
}

// PG bundles the pool with its tracer and slow threshold
type PG struct {
	Tracer QueryTracer
	Pool   *pgxpool.Pool
	SlowMs int
}

// Close shuts down the pool. Safe on nil
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}

// seam for tests
var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and connects. tune, when non-nil, gets a last look
// at the pool config before dialing. tracer may be nil
func Open(ctx context.Context, cfg Config, tracer QueryTracer, tune func(*pgxpool.Config)) (*PG, error) {
	poolCfg, perr := pgxpool.ParseConfig(cfg.URL)
	if perr != nil {
		return nil, perr
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if tune != nil {
		tune(poolCfg)
	}

	pool, err := newPool(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	client := &PG{Tracer: tracer, Pool: pool, SlowMs: cfg.SlowMs}
	return client, nil
}
