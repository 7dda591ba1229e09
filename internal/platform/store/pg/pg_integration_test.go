//go:build integration_pg
// +build integration_pg

package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres brings up a disposable container. The generous deadline
// covers the first image pull
func startPostgres(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	creq := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "reader",
			"POSTGRES_PASSWORD": "reader",
			"POSTGRES_DB":       "readathon",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(2 * time.Minute),
	}
	ctr, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: creq, Started: true})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	host, err := ctr.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	return fmt.Sprintf("postgres://reader:reader@%s:%s/readathon?sslmode=disable", host, port.Port())
}

func TestOpenAndQueryAgainstPostgres(t *testing.T) {
	dsn := startPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	const appName = "readathon-pg-integration"

	tunePool := func(pc *pgxpool.Config) {
		params := pc.ConnConfig.RuntimeParams
		if params == nil {
			params = map[string]string{}
			pc.ConnConfig.RuntimeParams = params
		}
		params["application_name"] = appName
		pc.MinConns = 1
	}

	WithTestDB(t, dsn, tunePool, func(p *PG) {
		// one pinned session so the TEMP table survives across statements
		conn := AcquireConn(t, p, ctx)

		var one int
		if err := conn.QueryRow(ctx, "select 1").Scan(&one); err != nil || one != 1 {
			t.Fatalf("select 1: %v (got %d)", err, one)
		}

		if _, err := conn.Exec(ctx, `create temporary table entries (id int primary key, title text)`); err != nil {
			t.Fatalf("create temp table: %v", err)
		}
		defer func() { _, _ = conn.Exec(ctx, `drop table if exists entries`) }()

		batch := &pgx.Batch{}
		batch.Queue(`insert into entries (id, title) values ($1,$2)`, 1, "alpha")
		br := conn.SendBatch(ctx, batch)
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			t.Fatalf("batch insert: %v", err)
		}
		if err := br.Close(); err != nil {
			t.Fatalf("batch close: %v", err)
		}

		type entry struct {
			ID    int
			Title string
		}
		rows, err := conn.Query(ctx, `select id, title from entries order by id`)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		defer rows.Close()

		got, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entry])
		if err != nil {
			t.Fatalf("collect: %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 || got[0].Title != "alpha" {
			t.Fatalf("rows = %#v", got)
		}

		var gotApp string
		if err := conn.QueryRow(ctx, `select current_setting('application_name')`).Scan(&gotApp); err != nil {
			t.Fatalf("application_name: %v", err)
		}
		if gotApp != appName {
			t.Fatalf("application_name = %q, want %q", gotApp, appName)
		}
	})
}
