// Package repo provides postgres access for the reading schedule
package repo

import (
	"context"
	"errors"

	"readathon/internal/modkit/repokit"
	perr "readathon/internal/platform/errors"
	"readathon/internal/platform/store"
	"readathon/internal/services/periods/domain"
)

// Storage is the minimal persistence surface for periods, books, and defaults
type Storage interface {
	UpsertBook(ctx context.Context, b domain.Book) (string, error)
	InsertPeriod(ctx context.Context, p domain.Period) error
	ListPeriods(ctx context.Context, clubID string) ([]domain.Period, error)
	DeletePeriod(ctx context.Context, clubID, id string) (bool, error)
	DeleteBookIfUnreferenced(ctx context.Context, clubID, bookID string) error
	DefaultRules(ctx context.Context, clubID string) (domain.RuleSet, bool, error)
	PutDefaultRules(ctx context.Context, clubID string, r domain.RuleSet) error
}

type (
	// PG binds the repo to a Queryer
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the periods repo
func NewPG() repokit.Binder[Storage] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Storage { return &queries{q: q} }

func (r *queries) UpsertBook(ctx context.Context, b domain.Book) (string, error) {
	const sql = `
insert into books (id, club_id, title, author, year)
values ($1, $2, $3, $4, $5)
on conflict (club_id, title) do update set title = excluded.title
returning id
`
	row := r.q.QueryRow(ctx, sql, b.ID, b.ClubID, b.Title, b.Author, b.Year)
	var id string
	if err := row.Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *queries) InsertPeriod(ctx context.Context, p domain.Period) error {
	const sql = `
insert into periods
	(id, club_id, book_id, start_date, end_date,
	common_minutes_per_point, other_minutes_per_point,
	finish_common_points, finish_other_points, attend_points,
	quote_common_points, quote_other_points)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	_, err := r.q.Exec(ctx, sql,
		p.ID, p.ClubID, p.Book.ID, p.Start, p.End,
		p.Rules.CommonMinutesPerPoint, p.Rules.OtherMinutesPerPoint,
		p.Rules.FinishCommonPoints, p.Rules.FinishOtherPoints, p.Rules.AttendPoints,
		p.Rules.QuoteCommonPoints, p.Rules.QuoteOtherPoints,
	)
	return err
}

func (r *queries) ListPeriods(ctx context.Context, clubID string) ([]domain.Period, error) {
	const sql = `
select p.id, p.club_id, p.start_date, p.end_date,
	p.common_minutes_per_point, p.other_minutes_per_point,
	p.finish_common_points, p.finish_other_points, p.attend_points,
	p.quote_common_points, p.quote_other_points,
	b.id, b.title, coalesce(b.author, ''), coalesce(b.year, 0)
from periods p
join books b on b.id = p.book_id
where p.club_id = $1
order by p.start_date asc, p.id asc
`
	return store.Many(ctx, r.q, scanPeriod, sql, clubID)
}

func scanPeriod(row store.Row) (domain.Period, error) {
	var p domain.Period
	if err := row.Scan(
		&p.ID, &p.ClubID, &p.Start, &p.End,
		&p.Rules.CommonMinutesPerPoint, &p.Rules.OtherMinutesPerPoint,
		&p.Rules.FinishCommonPoints, &p.Rules.FinishOtherPoints, &p.Rules.AttendPoints,
		&p.Rules.QuoteCommonPoints, &p.Rules.QuoteOtherPoints,
		&p.Book.ID, &p.Book.Title, &p.Book.Author, &p.Book.Year,
	); err != nil {
		return domain.Period{}, err
	}
	p.Start = p.Start.UTC()
	p.End = p.End.UTC()
	p.Book.ClubID = p.ClubID
	return p, nil
}

func (r *queries) DeletePeriod(ctx context.Context, clubID, id string) (bool, error) {
	const sql = `delete from periods where club_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, clubID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) DeleteBookIfUnreferenced(ctx context.Context, clubID, bookID string) error {
	const sql = `
delete from books
where club_id = $1 and id = $2
and not exists (select 1 from periods where book_id = $2)
`
	_, err := r.q.Exec(ctx, sql, clubID, bookID)
	return err
}

func (r *queries) DefaultRules(ctx context.Context, clubID string) (domain.RuleSet, bool, error) {
	const sql = `
select common_minutes_per_point, other_minutes_per_point,
	finish_common_points, finish_other_points, attend_points,
	quote_common_points, quote_other_points
from default_rules
where club_id = $1
`
	rs, err := store.One(ctx, r.q, scanRules, sql, clubID)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.RuleSet{}, false, nil
	}
	if err != nil {
		return domain.RuleSet{}, false, err
	}
	return rs, true, nil
}

func scanRules(row store.Row) (domain.RuleSet, error) {
	var rs domain.RuleSet
	err := row.Scan(
		&rs.CommonMinutesPerPoint, &rs.OtherMinutesPerPoint,
		&rs.FinishCommonPoints, &rs.FinishOtherPoints, &rs.AttendPoints,
		&rs.QuoteCommonPoints, &rs.QuoteOtherPoints,
	)
	return rs, err
}

func (r *queries) PutDefaultRules(ctx context.Context, clubID string, rs domain.RuleSet) error {
	const sql = `
insert into default_rules
	(club_id, common_minutes_per_point, other_minutes_per_point,
	finish_common_points, finish_other_points, attend_points,
	quote_common_points, quote_other_points)
values ($1, $2, $3, $4, $5, $6, $7, $8)
on conflict (club_id) do update set
	common_minutes_per_point = excluded.common_minutes_per_point,
	other_minutes_per_point = excluded.other_minutes_per_point,
	finish_common_points = excluded.finish_common_points,
	finish_other_points = excluded.finish_other_points,
	attend_points = excluded.attend_points,
	quote_common_points = excluded.quote_common_points,
	quote_other_points = excluded.quote_other_points
`
	_, err := r.q.Exec(ctx, sql,
		clubID, rs.CommonMinutesPerPoint, rs.OtherMinutesPerPoint,
		rs.FinishCommonPoints, rs.FinishOtherPoints, rs.AttendPoints,
		rs.QuoteCommonPoints, rs.QuoteOtherPoints,
	)
	return err
}
