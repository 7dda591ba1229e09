package store

import (
	"context"
	"errors"
	"time"

	"readathon/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// thin shims from pgx types to the store interfaces

type row struct {
	inner pgx.Row
	after func(error)
}

func (w row) Scan(dst ...any) error {
	err := w.inner.Scan(dst...)
	if w.after != nil {
		w.after(err)
	}
	return err
}

type rows struct{ inner pgx.Rows }

func (w rows) Next() bool            { return w.inner.Next() }
func (w rows) Scan(dst ...any) error { return w.inner.Scan(dst...) }
func (w rows) Err() error            { return w.inner.Err() }
func (w rows) Close()                { w.inner.Close() }

type tag struct{ ct pgconn.CommandTag }

func (w tag) String() string      { return w.ct.String() }
func (w tag) RowsAffected() int64 { return w.ct.RowsAffected() }

// observer forwards query timings to the configured tracer. Both the pool
// adapter and the tx querier embed one so plain and transactional queries
// report identically
type observer struct {
	tracer pg.QueryTracer
	slowMS int64
}

func (o observer) record(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if o.tracer == nil {
		return
	}
	us := time.Since(start).Microseconds()
	o.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      o.slowMS >= 0 && us >= o.slowMS*1000,
	})
}

// pgxExecutor is the surface shared by pgxpool.Pool and pgx.Tx
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier implements RowQuerier over either a pool or an open tx, timing
// every statement through the observer
type querier struct {
	ex pgxExecutor
	o  observer
}

func (q querier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := q.ex.Exec(ctx, sql, args...)
	q.o.record(ctx, sql, args, start, err)
	return tag{ct: ct}, err
}

func (q querier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := q.ex.Query(ctx, sql, args...)
	// timed to first row, not through the scan loop
	q.o.record(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rows{inner: rs}, nil
}

func (q querier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := q.ex.QueryRow(ctx, sql, args...)
	// pgx defers errors to Scan, so the event fires from there
	return row{inner: r, after: func(scanErr error) {
		q.o.record(ctx, sql, args, start, scanErr)
	}}
}

// pgAdapter puts RowQuerier and TxRunner on top of a pgx pool
type pgAdapter struct {
	querier
	p *pg.PG
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	obs := observer{tracer: p.Tracer, slowMS: int64(p.SlowMs)}
	return &pgAdapter{
		querier: querier{ex: p.Pool, o: obs},
		p:       p,
	}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error {
	a.p.Close()
	return nil
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(querier{ex: tx, o: a.o}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
