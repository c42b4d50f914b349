//go:build integration_pg

package store

import (
	"context"
	"sort"
	"testing"
	"time"

	perr "filmnames/internal/platform/errors"
	"filmnames/internal/platform/store/storetest"
)

func TestOpen_PGAndRedis_Integration(t *testing.T) {
	dsn := storetest.Postgres(t)
	addr := storetest.Redis(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := Open(ctx, Config{
		AppName: "filmnames-store-integration",
		PG:      PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
		RDS:     RedisConfig{Enabled: true, Addr: addr},
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if err := st.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}

	if _, err := st.PG.Exec(ctx, storetest.Schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := st.PG.Exec(ctx, `INSERT INTO people (id, slug, first_name, last_name) VALUES (1, 'p-1', 'Pedro', 'García')`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err = st.PG.Tx(ctx, func(q RowQuerier) error {
		return ExecOne(ctx, q, `UPDATE people SET last_name = $2 WHERE id = $1`, int64(1), "Garcia")
	})
	if err != nil {
		t.Fatalf("ExecOne: %v", err)
	}
	err = ExecOne(ctx, st.PG, `UPDATE people SET last_name = 'x' WHERE id = $1`, int64(404))
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing row should be NotFound, got %v", err)
	}
	var last string
	if err := st.PG.QueryRow(ctx, `SELECT last_name FROM people WHERE id = 1`).Scan(&last); err != nil || last != "Garcia" {
		t.Fatalf("last_name = %q, %v", last, err)
	}

	if err := st.RDS.ReplaceSet(ctx, "filmnames:test", []string{"pedro", "maría"}, time.Minute); err != nil {
		t.Fatalf("ReplaceSet: %v", err)
	}
	got, err := st.RDS.Members(ctx, "filmnames:test")
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	sort.Strings(got)
	if len(got) != 2 || got[0] != "maría" || got[1] != "pedro" {
		t.Fatalf("Members = %q", got)
	}
	if missing, err := st.RDS.Members(ctx, "filmnames:none"); err != nil || len(missing) != 0 {
		t.Fatalf("missing key should be empty: %q, %v", missing, err)
	}
}
