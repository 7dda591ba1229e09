package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WithTestDB opens a client against dsn, hands it to body, and closes
// on cleanup
func WithTestDB(t *testing.T, dsn string, tune func(*pgxpool.Config), body func(p *PG)) {
	t.Helper()

	client, err := Open(context.Background(), Config{URL: dsn}, nil, tune)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)
	body(client)
}

// AcquireConn pins one connection for the test so TEMP tables and
// session GUCs stay on a single session
func AcquireConn(t *testing.T, client *PG, ctx context.Context) *pgxpool.Conn {
	t.Helper()

	conn, err := client.Pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	t.Cleanup(conn.Release)
	return conn
}
