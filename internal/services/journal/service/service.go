// Package service contains journal workflows
package service

import (
	"context"

	"readathon/internal/modkit/repokit"
	perr "readathon/internal/platform/errors"
	pnet "readathon/internal/platform/net"
	"readathon/internal/platform/store"
	"readathon/internal/services/journal/domain"
	"readathon/internal/services/journal/repo"
)

// Service defines the journal service contract
type Service interface {
	domain.WriterPort
	domain.QueryPort
}

// Svc implements the journal service
type Svc struct {
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New constructs a journal service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("journal.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("journal.Service requires a non nil Storage binder")
	}
	return &Svc{binder: binder, db: db}
}

func clubID(ctx context.Context) (string, error) {
	if id := pnet.TenantID(ctx); id != "" {
		return id, nil
	}
	if id, ok := store.TenantID(ctx); ok && id != "" {
		return id, nil
	}
	return "", perr.Unauthorizedf("club scope required")
}

// Purge implements domain.WriterPort
func (s *Svc) Purge(ctx context.Context) error {
	club, err := clubID(ctx)
	if err != nil {
		return err
	}
	return s.db.Tx(ctx, func(q store.RowQuerier) error {
		return s.binder.Bind(q).PurgeDerived(ctx, club)
	})
}

// Write implements domain.WriterPort. Logs and achievements from one sync
// pass land together or not at all
func (s *Svc) Write(ctx context.Context, logs []domain.LogEntry, achievements []domain.Achievement) error {
	if _, err := clubID(ctx); err != nil {
		return err
	}
	return s.db.Tx(ctx, func(q store.RowQuerier) error {
		st := s.binder.Bind(q)
		if err := st.InsertLogs(ctx, logs); err != nil {
			return err
		}
		return st.InsertAchievements(ctx, achievements)
	})
}

// Snapshot implements domain.QueryPort
func (s *Svc) Snapshot(ctx context.Context) ([]domain.LogEntry, []domain.Achievement, error) {
	club, err := clubID(ctx)
	if err != nil {
		return nil, nil, err
	}
	var (
		logs []domain.LogEntry
		achs []domain.Achievement
	)
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		st := s.binder.Bind(q)
		var err error
		if logs, err = st.ListLogs(ctx, club); err != nil {
			return err
		}
		achs, err = st.ListAchievements(ctx, club)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return logs, achs, nil
}

// ListByMember implements domain.QueryPort
func (s *Svc) ListByMember(ctx context.Context, memberID string) ([]domain.LogEntry, error) {
	club, err := clubID(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.LogEntry
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(q).ListLogsByMember(ctx, club, memberID)
		return err
	})
	return out, err
}
