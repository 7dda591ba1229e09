// Package service contains scoring workflows
package service

import (
	"context"

	"readathon/internal/modkit/repokit"
	perr "readathon/internal/platform/errors"
	pnet "readathon/internal/platform/net"
	"readathon/internal/platform/store"
	journaldomain "readathon/internal/services/journal/domain"
	memberdomain "readathon/internal/services/members/domain"
	perioddomain "readathon/internal/services/periods/domain"
	"readathon/internal/services/scoring/domain"
	"readathon/internal/services/scoring/repo"
)

// Service defines the scoring service contract
type Service interface {
	domain.RecomputePort
	domain.QueryPort
}

// Svc implements the scoring service
type Svc struct {
	binder  repokit.Binder[repo.Storage]
	db      repokit.TxRunner
	journal journaldomain.QueryPort
	periods perioddomain.QueryPort
	members memberdomain.QueryPort
}

// New constructs a scoring service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Storage],
	journal journaldomain.QueryPort,
	periods perioddomain.QueryPort,
	members memberdomain.QueryPort,
) *Svc {
	if db == nil {
		panic("scoring.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("scoring.Service requires a non nil Storage binder")
	}
	if journal == nil || periods == nil || members == nil {
		panic("scoring.Service requires journal, periods, and members ports")
	}
	return &Svc{binder: binder, db: db, journal: journal, periods: periods, members: members}
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

// Recompute implements domain.RecomputePort. Standings are replaced
// wholesale in one transaction so readers never see a half-applied run
func (s *Svc) Recompute(ctx context.Context) error {
	club, err := clubID(ctx)
	if err != nil {
		return err
	}

	logs, achs, err := s.journal.Snapshot(ctx)
	if err != nil {
		return err
	}
	periods, err := s.periods.List(ctx)
	if err != nil {
		return err
	}
	// inactive members keep their history on the board
	members, err := s.members.List(ctx, memberdomain.ListInput{IncludeInactive: true})
	if err != nil {
		return err
	}

	memberStats, groupStats := domain.Compute(logs, achs, periods, members)

	return s.db.Tx(ctx, func(q store.RowQuerier) error {
		st := s.binder.Bind(q)
		if err := st.ReplaceMemberStats(ctx, club, memberStats); err != nil {
			return err
		}
		return st.ReplaceGroupStats(ctx, club, groupStats)
	})
}

// Leaderboard implements domain.QueryPort
func (s *Svc) Leaderboard(ctx context.Context) ([]domain.MemberStats, error) {
	club, err := clubID(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.MemberStats
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(q).Leaderboard(ctx, club)
		return err
	})
	return out, err
}

// GroupSummary implements domain.QueryPort
func (s *Svc) GroupSummary(ctx context.Context) ([]domain.GroupStats, error) {
	club, err := clubID(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.GroupStats
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(q).GroupSummary(ctx, club)
		return err
	})
	return out, err
}
