// Package repo provides postgres access for the derived journal
package repo

import (
	"context"
	"fmt"
	"strings"

	"readathon/internal/modkit/repokit"
	"readathon/internal/platform/store"
	"readathon/internal/services/journal/domain"
)

// Storage is the minimal persistence surface for logs and achievements
type Storage interface {
	PurgeDerived(ctx context.Context, clubID string) error
	InsertLogs(ctx context.Context, xs []domain.LogEntry) error
	InsertAchievements(ctx context.Context, xs []domain.Achievement) error
	ListLogs(ctx context.Context, clubID string) ([]domain.LogEntry, error)
	ListLogsByMember(ctx context.Context, clubID, memberID string) ([]domain.LogEntry, error)
	ListAchievements(ctx context.Context, clubID string) ([]domain.Achievement, error)
}

type (
	// PG binds the repo to a Queryer
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the journal repo
func NewPG() repokit.Binder[Storage] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Storage { return &queries{q: q} }

func (r *queries) PurgeDerived(ctx context.Context, clubID string) error {
	if _, err := r.q.Exec(ctx, `delete from achievements where club_id = $1`, clubID); err != nil {
		return err
	}
	_, err := r.q.Exec(ctx, `delete from reading_logs where club_id = $1`, clubID)
	return err
}

func (r *queries) InsertLogs(ctx context.Context, xs []domain.LogEntry) error {
	if len(xs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO reading_logs
		(id, club_id, member_id, period_id, submitted_at, entry_date,
		common_minutes, other_minutes, quote_common, quote_other) VALUES `)

	args := make([]any, 0, len(xs)*10)
	for i, e := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*10 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4,
			base+5, base+6, base+7, base+8, base+9)
		args = append(args,
			e.ID, e.ClubID, e.MemberID, e.PeriodID, e.SubmittedAt,
			e.EntryDate, e.CommonMinutes, e.OtherMinutes, e.QuoteCommon, e.QuoteOther,
		)
	}
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

func (r *queries) InsertAchievements(ctx context.Context, xs []domain.Achievement) error {
	if len(xs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO achievements
		(id, club_id, member_id, period_id, kind, achieved_on, book_id) VALUES `)

	args := make([]any, 0, len(xs)*7)
	for i, a := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*7 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, a.ID, a.ClubID, a.MemberID, a.PeriodID, string(a.Kind), a.AchievedOn, a.BookID)
	}
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

const logColumns = `id, club_id, member_id, period_id, submitted_at, entry_date,
common_minutes, other_minutes, quote_common, quote_other`

func scanLog(row store.Row) (domain.LogEntry, error) {
	var e domain.LogEntry
	if err := row.Scan(
		&e.ID, &e.ClubID, &e.MemberID, &e.PeriodID, &e.SubmittedAt, &e.EntryDate,
		&e.CommonMinutes, &e.OtherMinutes, &e.QuoteCommon, &e.QuoteOther,
	); err != nil {
		return domain.LogEntry{}, err
	}
	e.EntryDate = e.EntryDate.UTC()
	return e, nil
}

func (r *queries) ListLogs(ctx context.Context, clubID string) ([]domain.LogEntry, error) {
	sql := `select ` + logColumns + `
from reading_logs
where club_id = $1
order by submitted_at asc, id asc`
	return store.Many(ctx, r.q, scanLog, sql, clubID)
}

func (r *queries) ListLogsByMember(ctx context.Context, clubID, memberID string) ([]domain.LogEntry, error) {
	sql := `select ` + logColumns + `
from reading_logs
where club_id = $1 and member_id = $2
order by entry_date asc, submitted_at asc`
	return store.Many(ctx, r.q, scanLog, sql, clubID, memberID)
}

func (r *queries) ListAchievements(ctx context.Context, clubID string) ([]domain.Achievement, error) {
	const sql = `
select id, club_id, member_id, period_id, kind, achieved_on, book_id
from achievements
where club_id = $1
order by achieved_on asc, id asc
`
	return store.Many(ctx, r.q, scanAchievement, sql, clubID)
}

func scanAchievement(row store.Row) (domain.Achievement, error) {
	var a domain.Achievement
	var kind string
	if err := row.Scan(&a.ID, &a.ClubID, &a.MemberID, &a.PeriodID, &kind, &a.AchievedOn, &a.BookID); err != nil {
		return domain.Achievement{}, err
	}
	a.Kind = domain.AchievementKind(kind)
	a.AchievedOn = a.AchievedOn.UTC()
	return a, nil
}
