package service

import (
	"context"
	"testing"
	"time"

	"readathon/internal/modkit/repokit"
	perr "readathon/internal/platform/errors"
	"readathon/internal/platform/store"
	"readathon/internal/services/periods/domain"
	"readathon/internal/services/periods/repo"
)

// fakeTx runs fn directly; the embedded interface covers the query surface,
// which these workflows never touch outside the bound Storage
type fakeTx struct{ store.RowQuerier }

func (fakeTx) Tx(ctx context.Context, fn func(store.RowQuerier) error) error { return fn(nil) }

// fakeStore is an in-memory Storage for workflow tests
type fakeStore struct {
	rules    *domain.RuleSet
	periods  []domain.Period
	books    map[string]string // title -> id
	deleted  []string
	bookGone []string
}

type fakeBinder struct{ s *fakeStore }

func (b fakeBinder) Bind(repokit.Queryer) repo.Storage { return b.s }

func (f *fakeStore) UpsertBook(_ context.Context, b domain.Book) (string, error) {
	if f.books == nil {
		f.books = map[string]string{}
	}
	if id, ok := f.books[b.Title]; ok {
		return id, nil
	}
	f.books[b.Title] = b.ID
	return b.ID, nil
}

func (f *fakeStore) InsertPeriod(_ context.Context, p domain.Period) error {
	f.periods = append(f.periods, p)
	return nil
}

func (f *fakeStore) ListPeriods(_ context.Context, _ string) ([]domain.Period, error) {
	return f.periods, nil
}

func (f *fakeStore) DeletePeriod(_ context.Context, _, id string) (bool, error) {
	f.deleted = append(f.deleted, id)
	return true, nil
}

func (f *fakeStore) DeleteBookIfUnreferenced(_ context.Context, _, bookID string) error {
	f.bookGone = append(f.bookGone, bookID)
	return nil
}

func (f *fakeStore) DefaultRules(_ context.Context, _ string) (domain.RuleSet, bool, error) {
	if f.rules == nil {
		return domain.RuleSet{}, false, nil
	}
	return *f.rules, true, nil
}

func (f *fakeStore) PutDefaultRules(_ context.Context, _ string, r domain.RuleSet) error {
	f.rules = &r
	return nil
}

func ctxWithClub() context.Context {
	return store.WithTenant(context.Background(), "11111111-1111-4111-8111-111111111111")
}

func newSvc(fs *fakeStore) *Svc {
	return &Svc{binder: fakeBinder{s: fs}, db: fakeTx{}, now: time.Now}
}

func TestCreateCopiesDefaultRules(t *testing.T) {
	fs := &fakeStore{rules: &domain.RuleSet{CommonMinutesPerPoint: 10, FinishCommonPoints: 50}}
	s := newSvc(fs)

	p, err := s.Create(ctxWithClub(), domain.CreateInput{
		BookTitle: "الأيام", Start: "2026-01-01", End: "2026-01-31",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Rules.CommonMinutesPerPoint != 10 || p.Rules.FinishCommonPoints != 50 {
		t.Fatalf("rules not copied: %+v", p.Rules)
	}

	// later default edits leave the stored period untouched
	if err := s.PutDefaultRules(ctxWithClub(), domain.RuleSet{CommonMinutesPerPoint: 5}); err != nil {
		t.Fatalf("PutDefaultRules: %v", err)
	}
	if fs.periods[0].Rules.CommonMinutesPerPoint != 10 {
		t.Fatalf("stored period rules changed: %+v", fs.periods[0].Rules)
	}
}

func TestCreateWithoutDefaultRulesFails(t *testing.T) {
	s := newSvc(&fakeStore{})
	_, err := s.Create(ctxWithClub(), domain.CreateInput{
		BookTitle: "x", Start: "2026-01-01", End: "2026-01-31",
	})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCreateRejectsOverlap(t *testing.T) {
	fs := &fakeStore{rules: &domain.RuleSet{}}
	s := newSvc(fs)
	if _, err := s.Create(ctxWithClub(), domain.CreateInput{
		BookTitle: "a", Start: "2026-01-01", End: "2026-01-31",
	}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := s.Create(ctxWithClub(), domain.CreateInput{
		BookTitle: "b", Start: "2026-01-31", End: "2026-02-28",
	})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestCreateRejectsInvertedWindow(t *testing.T) {
	s := newSvc(&fakeStore{rules: &domain.RuleSet{}})
	_, err := s.Create(ctxWithClub(), domain.CreateInput{
		BookTitle: "x", Start: "2026-02-01", End: "2026-01-01",
	})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestDeleteRefusesCurrentPeriod(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	fs := &fakeStore{periods: []domain.Period{{
		ID:    "cur",
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}}}
	s := newSvc(fs)
	s.now = func() time.Time { return now }

	err := s.Delete(ctxWithClub(), domain.DeleteInput{ID: "cur"})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if len(fs.deleted) != 0 {
		t.Fatal("current period must not be deleted")
	}
}

func TestDeletePastPeriodCleansBook(t *testing.T) {
	fs := &fakeStore{periods: []domain.Period{{
		ID:    "old",
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Book:  domain.Book{ID: "bk"},
	}}}
	s := newSvc(fs)

	if err := s.Delete(ctxWithClub(), domain.DeleteInput{ID: "old"}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(fs.deleted) != 1 || fs.deleted[0] != "old" {
		t.Fatalf("deleted = %v", fs.deleted)
	}
	if len(fs.bookGone) != 1 || fs.bookGone[0] != "bk" {
		t.Fatalf("book cleanup = %v", fs.bookGone)
	}
}

func TestClubScopeRequired(t *testing.T) {
	s := newSvc(&fakeStore{})
	if _, err := s.List(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
}
