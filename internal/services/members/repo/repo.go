// Package repo provides postgres access for the roster
package repo

import (
	"context"

	"readathon/internal/modkit/repokit"
	"readathon/internal/platform/store"
	"readathon/internal/services/members/domain"
)

// Storage is the minimal persistence surface for members
type Storage interface {
	Insert(ctx context.Context, m domain.Member) error
	List(ctx context.Context, clubID string, includeInactive bool) ([]domain.Member, error)
	SetActive(ctx context.Context, clubID, id string, active bool) (bool, error)
	All(ctx context.Context, clubID string) ([]domain.Member, error)
}

type (
	// PG binds the repo to a Queryer
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the members repo
func NewPG() repokit.Binder[Storage] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Storage { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, m domain.Member) error {
	const sql = `
insert into members (id, club_id, name, folded_name, active, created_at)
values ($1, $2, $3, $4, $5, $6)
`
	_, err := r.q.Exec(ctx, sql, m.ID, m.ClubID, m.Name, m.Folded, m.Active, m.CreatedAt)
	return err
}

func (r *queries) List(ctx context.Context, clubID string, includeInactive bool) ([]domain.Member, error) {
	const sql = `
select id, club_id, name, folded_name, active, created_at
from members
where club_id = $1
and ($2 or active)
order by created_at asc, id asc
`
	return store.Many(ctx, r.q, scanMember, sql, clubID, includeInactive)
}

func scanMember(row store.Row) (domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.ClubID, &m.Name, &m.Folded, &m.Active, &m.CreatedAt)
	return m, err
}

func (r *queries) All(ctx context.Context, clubID string) ([]domain.Member, error) {
	return r.List(ctx, clubID, true)
}

func (r *queries) SetActive(ctx context.Context, clubID, id string, active bool) (bool, error) {
	const sql = `update members set active = $3 where club_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, clubID, id, active)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
