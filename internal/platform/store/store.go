// Package store fronts the storage backends behind small sql interfaces
package store

import (
	"context"
	"errors"
	"fmt"

	"readathon/internal/platform/logger"
)

// Row scans a single result row
type Row interface {
	Scan(dst ...any) error
}

// Rows iterates a result set. Callers own Close
type Rows interface {
	Next() bool
	Scan(dst ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write statement did
type CommandTag interface {
	RowsAffected() int64
	String() string
}

// RowQuerier is the sql surface repos program against
type RowQuerier interface {
	Exec(ctx context.Context, query string, args ...any) (CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

// TxRunner adds transactions on top of RowQuerier. fn runs against the
// transaction and any error from it rolls back
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(RowQuerier) error) error
}

// Pinger reports backend readiness
type Pinger interface{ Ping(context.Context) error }

// Store holds whichever backends Open was asked to bring up. The zero
// value is usable and backendless
type Store struct {
	// Log feeds the subclients, a zero logger discards
	Log logger.Logger

	// PG is the postgres seam, nil when postgres is disabled
	PG TxRunner
}

// Open builds a Store with the backends cfg enables. Disabled backends
// stay nil
func Open(ctx context.Context, conf Config, opts ...Option) (*Store, error) {
	st := new(Store)
	for _, apply := range opts {
		if err := apply(st); err != nil {
			return nil, err
		}
	}

	// materialize the zero logger so subclients never see nil internals
	st.Log = st.Log.With().Logger()

	if !conf.PG.Enabled {
		return st, nil
	}
	if _, err := openPG(ctx, conf, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Guard pings every configured backend and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}

	var failures []error
	if p, ok := any(s.PG).(Pinger); ok && s.PG != nil {
		if err := p.Ping(ctx); err != nil {
			failures = append(failures, fmt.Errorf("pg: %w", err))
		}
	}
	return errors.Join(failures...)
}

// Close shuts down every initialized backend, skipping nil ones
func (s *Store) Close(ctx context.Context) error {
	var failures []error
	if closer, ok := s.PG.(interface{ Close() error }); ok {
		if cerr := closer.Close(); cerr != nil {
			failures = append(failures, cerr)
		}
	}
	return errors.Join(failures...)
}
