package store

import (
	"context"

	perr "readathon/internal/platform/errors"
)

// scanRow lets a per-row scan func take a Row while iterating Rows
type scanRow struct{ rows Rows }

func (s scanRow) Scan(dst ...any) error { return s.rows.Scan(dst...) }

// collect drains rows through scan, stopping on the first scan error
func collect[T any](rows Rows, scan func(Row) (T, error)) ([]T, error) {
	var out []T
	for rows.Next() {
		item, err := scan(scanRow{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Many runs query and maps every result row through scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows, scan)
}

// One runs query and maps the single result row through scan.
// No rows is ErrNotFound; more than one row is a query bug
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), query string, args ...any) (T, error) {
	var zero T

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	matched, err := collect(rows, scan)
	switch {
	case err != nil:
		return zero, err
	case len(matched) == 0:
		return zero, perr.ErrNotFound
	case len(matched) > 1:
		return zero, perr.Newf(perr.ErrorCodeDB, "query for one row matched several")
	}
	return matched[0], nil
}
