package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"readathon/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakePgxRow struct{ scan func(dst ...any) error }

func (r fakePgxRow) Scan(dst ...any) error { return r.scan(dst...) }

// fakePgxRows serves rows of (int, string) pairs, which is all the adapter
// tests need
type fakePgxRows struct {
	data   [][2]any
	idx    int
	err    error
	closed bool
}

func (r *fakePgxRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx <= len(r.data)
}

func (r *fakePgxRows) Scan(dst ...any) error {
	if r.idx < 1 || r.idx > len(r.data) {
		return errors.New("scan out of range")
	}
	if len(dst) != 2 {
		return fmt.Errorf("want 2 targets, got %d", len(dst))
	}
	cur := r.data[r.idx-1]
	*(dst[0].(*int)) = cur[0].(int)
	*(dst[1].(*string)) = cur[1].(string)
	return nil
}

func (r *fakePgxRows) Err() error { return r.err }
func (r *fakePgxRows) Close()     { r.closed = true }

func (r *fakePgxRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakePgxRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakePgxRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakePgxRows) RawValues() [][]byte                          { return nil }
func (r *fakePgxRows) Conn() *pgx.Conn                              { return nil }

// fakeExecutor satisfies pgxExecutor with per-call hooks
type fakeExecutor struct {
	onExec     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	onQuery    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	onQueryRow func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (f *fakeExecutor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return f.onExec(ctx, sql, args...)
}

func (f *fakeExecutor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return f.onQuery(ctx, sql, args...)
}

func (f *fakeExecutor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f.onQueryRow(ctx, sql, args...)
}

type captureTracer struct{ events []pg.QueryEvent }

func (c *captureTracer) OnQuery(_ context.Context, ev pg.QueryEvent) {
	c.events = append(c.events, ev)
}

func TestQuerierDelegatesAndTraces(t *testing.T) {
	t.Parallel()

	const (
		execSQL  = "UPDATE member_stats SET total_minutes = $1 WHERE member_id = $2"
		querySQL = "SELECT id, display_name FROM members WHERE club_id = $1"
	)

	fx := &fakeExecutor{
		onExec: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			if sql != execSQL || len(args) != 2 {
				return pgconn.CommandTag{}, errors.New("unexpected exec")
			}
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
		onQuery: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			if sql != querySQL {
				return nil, errors.New("unexpected query")
			}
			return &fakePgxRows{data: [][2]any{{1, "Maya"}, {2, "Omar"}}}, nil
		},
		onQueryRow: func(context.Context, string, ...any) pgx.Row {
			return fakePgxRow{scan: func(dst ...any) error {
				*(dst[0].(*int)) = 7
				*(dst[1].(*string)) = "clubs"
				return nil
			}}
		},
	}
	tr := &captureTracer{}
	q := querier{ex: fx, o: observer{tracer: tr, slowMS: 0}}

	ct, err := q.Exec(context.Background(), execSQL, 90, 1)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if got := ct.String(); got != "UPDATE 1" {
		t.Fatalf("CommandTag = %q", got)
	}

	rs, err := q.Query(context.Background(), querySQL, "club-1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	var ids []int
	for rs.Next() {
		var id int
		var name string
		if err := rs.Scan(&id, &name); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	rs.Close()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("ids = %v", ids)
	}

	var n int
	var label string
	if err := q.QueryRow(context.Background(), "SELECT 7, 'clubs'").Scan(&n, &label); err != nil {
		t.Fatalf("QueryRow: %v", err)
	}
	if n != 7 || label != "clubs" {
		t.Fatalf("QueryRow scanned n=%d label=%q", n, label)
	}

	// one event per statement, and slowMS=0 marks everything slow
	if len(tr.events) != 3 {
		t.Fatalf("traced %d events, want 3", len(tr.events))
	}
	for _, ev := range tr.events {
		if !ev.Slow {
			t.Fatalf("event for %q not flagged slow", ev.SQL)
		}
		if ev.Err != nil {
			t.Fatalf("event for %q carries error %v", ev.SQL, ev.Err)
		}
	}
}

func TestQuerierPropagatesErrors(t *testing.T) {
	t.Parallel()

	fx := &fakeExecutor{
		onExec: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec failed")
		},
		onQuery: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("query failed")
		},
		onQueryRow: func(context.Context, string, ...any) pgx.Row {
			return fakePgxRow{scan: func(...any) error { return errors.New("scan failed") }}
		},
	}
	tr := &captureTracer{}
	q := querier{ex: fx, o: observer{tracer: tr, slowMS: -1}}

	if _, err := q.Exec(context.Background(), "x"); err == nil {
		t.Fatal("want Exec error")
	}
	if _, err := q.Query(context.Background(), "x"); err == nil {
		t.Fatal("want Query error")
	}
	var a int
	var b string
	if err := q.QueryRow(context.Background(), "x").Scan(&a, &b); err == nil {
		t.Fatal("want QueryRow scan error")
	}

	if len(tr.events) != 3 {
		t.Fatalf("traced %d events, want 3", len(tr.events))
	}
	for _, ev := range tr.events {
		if ev.Err == nil {
			t.Fatalf("event for %q lost its error", ev.SQL)
		}
		if ev.Slow {
			t.Fatalf("slowMS<0 must disable the slow flag, got slow for %q", ev.SQL)
		}
	}
}

func TestRowsCloseReachesPgx(t *testing.T) {
	t.Parallel()

	fr := &fakePgxRows{err: errors.New("wire dropped")}
	rs := rows{inner: fr}
	if rs.Next() {
		t.Fatal("Next must be false once the rows carry an error")
	}
	if err := rs.Err(); err == nil {
		t.Fatal("want iteration error")
	}
	rs.Close()
	if !fr.closed {
		t.Fatal("Close did not reach the pgx rows")
	}
}
