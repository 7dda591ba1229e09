// Package repo provides postgres access for persisted standings
package repo

import (
	"context"
	"fmt"
	"strings"

	"readathon/internal/modkit/repokit"
	"readathon/internal/platform/store"
	"readathon/internal/services/scoring/domain"
)

// Storage is the minimal persistence surface for standings
type Storage interface {
	ReplaceMemberStats(ctx context.Context, clubID string, xs []domain.MemberStats) error
	ReplaceGroupStats(ctx context.Context, clubID string, xs []domain.GroupStats) error
	Leaderboard(ctx context.Context, clubID string) ([]domain.MemberStats, error)
	GroupSummary(ctx context.Context, clubID string) ([]domain.GroupStats, error)
}

type (
	// PG binds the repo to a Queryer
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the scoring repo
func NewPG() repokit.Binder[Storage] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Storage { return &queries{q: q} }

func (r *queries) ReplaceMemberStats(ctx context.Context, clubID string, xs []domain.MemberStats) error {
	if _, err := r.q.Exec(ctx, `delete from member_stats where club_id = $1`, clubID); err != nil {
		return err
	}
	if len(xs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO member_stats
		(club_id, member_id, total_points, common_minutes, other_minutes,
		common_books, other_books, quotes, meetings, last_log_date, last_quote_date) VALUES `)

	args := make([]any, 0, len(xs)*11)
	for i, m := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*11 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5,
			base+6, base+7, base+8, base+9, base+10)
		args = append(args,
			clubID, m.MemberID, m.TotalPoints, m.CommonMinutes, m.OtherMinutes,
			m.CommonBooks, m.OtherBooks, m.Quotes, m.Meetings, m.LastLogDate, m.LastQuoteDate,
		)
	}
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

func (r *queries) ReplaceGroupStats(ctx context.Context, clubID string, xs []domain.GroupStats) error {
	if _, err := r.q.Exec(ctx, `delete from group_stats where club_id = $1`, clubID); err != nil {
		return err
	}
	if len(xs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO group_stats
		(club_id, period_id, total_minutes, total_quotes, active_members) VALUES `)

	args := make([]any, 0, len(xs)*5)
	for i, g := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*5 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d)", base, base+1, base+2, base+3, base+4)
		args = append(args, clubID, g.PeriodID, g.TotalMinutes, g.TotalQuotes, g.ActiveMembers)
	}
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

func (r *queries) Leaderboard(ctx context.Context, clubID string) ([]domain.MemberStats, error) {
	const sql = `
select s.member_id, m.name, s.total_points, s.common_minutes, s.other_minutes,
	s.common_books, s.other_books, s.quotes, s.meetings, s.last_log_date, s.last_quote_date
from member_stats s
join members m on m.id = s.member_id
where s.club_id = $1
order by s.total_points desc, s.member_id asc
`
	return store.Many(ctx, r.q, scanMemberStats, sql, clubID)
}

func scanMemberStats(row store.Row) (domain.MemberStats, error) {
	var m domain.MemberStats
	err := row.Scan(
		&m.MemberID, &m.Name, &m.TotalPoints, &m.CommonMinutes, &m.OtherMinutes,
		&m.CommonBooks, &m.OtherBooks, &m.Quotes, &m.Meetings, &m.LastLogDate, &m.LastQuoteDate,
	)
	return m, err
}

func (r *queries) GroupSummary(ctx context.Context, clubID string) ([]domain.GroupStats, error) {
	const sql = `
select g.period_id, b.title, g.total_minutes, g.total_quotes, g.active_members
from group_stats g
join periods p on p.id = g.period_id
join books b on b.id = p.book_id
where g.club_id = $1
order by p.start_date asc
`
	return store.Many(ctx, r.q, scanGroupStats, sql, clubID)
}

func scanGroupStats(row store.Row) (domain.GroupStats, error) {
	var g domain.GroupStats
	err := row.Scan(&g.PeriodID, &g.BookTitle, &g.TotalMinutes, &g.TotalQuotes, &g.ActiveMembers)
	return g, err
}
