// Package service contains schedule workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"readathon/internal/core/parse"
	"readathon/internal/modkit/repokit"
	perr "readathon/internal/platform/errors"
	pnet "readathon/internal/platform/net"
	"readathon/internal/platform/store"
	"readathon/internal/services/periods/domain"
	"readathon/internal/services/periods/repo"
)

// Service defines the periods service contract
type Service interface {
	domain.WriterPort
	domain.QueryPort
}

// Svc implements the periods service
type Svc struct {
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	now    func() time.Time
}

// New constructs a periods service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("periods.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("periods.Service requires a non nil Storage binder")
	}
	return &Svc{binder: binder, db: db, now: time.Now}
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

// parseDate accepts ISO dates from the API and the form's day format alike
func parseDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		return t, nil
	}
	return parse.Day(raw)
}

// Create implements domain.WriterPort. The club's default rules are copied
// into the new period; a club without defaults cannot schedule anything, so a
// missing row fails loudly instead of silently zeroing every rule
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Period, error) {
	club, err := clubID(ctx)
	if err != nil {
		return domain.Period{}, err
	}
	start, err := parseDate(in.Start)
	if err != nil {
		return domain.Period{}, perr.InvalidArgf("start date %q", in.Start)
	}
	end, err := parseDate(in.End)
	if err != nil {
		return domain.Period{}, perr.InvalidArgf("end date %q", in.End)
	}
	if end.Before(start) {
		return domain.Period{}, perr.InvalidArgf("period ends before it starts")
	}

	p := domain.Period{
		ID:     uuid.NewString(),
		ClubID: club,
		Start:  start,
		End:    end,
		Book: domain.Book{
			ID:     uuid.NewString(),
			ClubID: club,
			Title:  in.BookTitle,
			Author: in.BookAuthor,
			Year:   in.BookYear,
		},
	}

	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		st := s.binder.Bind(q)

		rules, ok, err := st.DefaultRules(ctx, club)
		if err != nil {
			return err
		}
		if !ok {
			return perr.NotFoundf("club has no default rules; set them before scheduling")
		}
		p.Rules = rules

		existing, err := st.ListPeriods(ctx, club)
		if err != nil {
			return err
		}
		for _, e := range existing {
			if p.Overlaps(e) {
				return perr.Conflictf("period overlaps %s (%s to %s)",
					e.Book.Title, e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
			}
		}

		bookID, err := st.UpsertBook(ctx, p.Book)
		if err != nil {
			return err
		}
		p.Book.ID = bookID
		return st.InsertPeriod(ctx, p)
	})
	if err != nil {
		return domain.Period{}, err
	}
	return p, nil
}

// Delete implements domain.WriterPort. The period covering today is refused;
// deleting the active window mid-run would orphan the current standings
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) error {
	club, err := clubID(ctx)
	if err != nil {
		return err
	}
	today := s.now().UTC().Truncate(24 * time.Hour)

	return s.db.Tx(ctx, func(q store.RowQuerier) error {
		st := s.binder.Bind(q)

		periods, err := st.ListPeriods(ctx, club)
		if err != nil {
			return err
		}
		var target *domain.Period
		for i := range periods {
			if periods[i].ID == in.ID {
				target = &periods[i]
				break
			}
		}
		if target == nil {
			return perr.NotFoundf("period %s", in.ID)
		}
		if target.Contains(today) {
			return perr.Conflictf("period is currently running")
		}

		// achievements and group stats go with the period via FK cascade
		if _, err := st.DeletePeriod(ctx, club, in.ID); err != nil {
			return err
		}
		return st.DeleteBookIfUnreferenced(ctx, club, target.Book.ID)
	})
}

// List implements domain.QueryPort
func (s *Svc) List(ctx context.Context) ([]domain.Period, error) {
	club, err := clubID(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Period
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(q).ListPeriods(ctx, club)
		return err
	})
	return out, err
}

// DefaultRules implements domain.QueryPort
func (s *Svc) DefaultRules(ctx context.Context) (domain.RuleSet, error) {
	club, err := clubID(ctx)
	if err != nil {
		return domain.RuleSet{}, err
	}
	var (
		rules domain.RuleSet
		ok    bool
	)
	err = s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		rules, ok, err = s.binder.Bind(q).DefaultRules(ctx, club)
		return err
	})
	if err != nil {
		return domain.RuleSet{}, err
	}
	if !ok {
		return domain.RuleSet{}, perr.NotFoundf("club has no default rules")
	}
	return rules, nil
}

// PutDefaultRules implements domain.WriterPort. Existing periods keep the
// rules they were created with
func (s *Svc) PutDefaultRules(ctx context.Context, r domain.RuleSet) error {
	club, err := clubID(ctx)
	if err != nil {
		return err
	}
	return s.db.Tx(ctx, func(q store.RowQuerier) error {
		return s.binder.Bind(q).PutDefaultRules(ctx, club, r)
	})
}
