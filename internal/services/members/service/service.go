// Package service contains roster workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"readathon/internal/adapters/sheetrow"
	"readathon/internal/core/fold"
	"readathon/internal/modkit/repokit"
	perr "readathon/internal/platform/errors"
	"readathon/internal/platform/logger"
	pnet "readathon/internal/platform/net"
	"readathon/internal/platform/store"
	"readathon/internal/services/members/domain"
	"readathon/internal/services/members/repo"
)

// Service defines the members service contract
type Service interface {
	domain.WriterPort
	domain.QueryPort
}

// Svc implements the members service
type Svc struct {
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	pusher sheetrow.NamePusher // optional, nil disables choice-list sync
}

// New constructs a members service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], pusher sheetrow.NamePusher) *Svc {
	if db == nil {
		panic("members.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("members.Service requires a non nil Storage binder")
	}
	return &Svc{binder: binder, db: db, pusher: pusher}
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

// Enroll implements domain.WriterPort
func (s *Svc) Enroll(ctx context.Context, in domain.EnrollInput) (domain.Member, error) {
	club, err := clubID(ctx)
	if err != nil {
		return domain.Member{}, err
	}
	folded := fold.Fold(in.Name)
	if folded == "" {
		return domain.Member{}, perr.InvalidArgf("member name folds to empty")
	}
	m := domain.Member{
		ID:        uuid.NewString(),
		ClubID:    club,
		Name:      in.Name,
		Folded:    folded,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		return s.binder.Bind(q).Insert(ctx, m)
	})
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return domain.Member{}, perr.Conflictf("member %q already enrolled", in.Name)
		}
		return domain.Member{}, perr.FromPostgres(err, "enroll member")
	}
	s.pushChoices(ctx, club)
	return m, nil
}

// Deactivate implements domain.WriterPort
func (s *Svc) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Reactivate implements domain.WriterPort
func (s *Svc) Reactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *Svc) setActive(ctx context.Context, id string, active bool) error {
	club, err := clubID(ctx)
	if err != nil {
		return err
	}
	var found bool
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		found, err = s.binder.Bind(q).SetActive(ctx, club, id, active)
		return err
	})
	if err != nil {
		return perr.FromPostgres(err, "set member active")
	}
	if !found {
		return perr.NotFoundf("member %s", id)
	}
	s.pushChoices(ctx, club)
	return nil
}

// List implements domain.QueryPort
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Member, error) {
	club, err := clubID(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Member
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(q).List(ctx, club, in.IncludeInactive)
		return err
	})
	return out, err
}

// FoldIndex implements domain.QueryPort
func (s *Svc) FoldIndex(ctx context.Context) (map[string]string, error) {
	club, err := clubID(ctx)
	if err != nil {
		return nil, err
	}
	var all []domain.Member
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		all, err = s.binder.Bind(q).All(ctx, club)
		return err
	})
	if err != nil {
		return nil, err
	}
	idx := make(map[string]string, len(all))
	for _, m := range all {
		idx[m.Folded] = m.ID
	}
	return idx, nil
}

// pushChoices forwards the active roster to the form's selectable list.
// The engine never depends on the push succeeding
func (s *Svc) pushChoices(ctx context.Context, club string) {
	if s.pusher == nil {
		return
	}
	active, err := s.List(store.WithTenant(ctx, club), domain.ListInput{})
	if err == nil {
		names := make([]string, 0, len(active))
		for _, m := range active {
			names = append(names, m.Name)
		}
		err = s.pusher.Push(ctx, names)
	}
	if err != nil {
		logger.Named("members").Warn().Err(err).Msg("choice list push failed")
	}
}
