//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"filmnames/internal/modkit/repokit"
	perr "filmnames/internal/platform/errors"
	"filmnames/internal/platform/store"
	"filmnames/internal/platform/store/storetest"
)

func TestPG_ListAndUpdate_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "filmnames-people-integration",
		PG:      store.PGConfig{Enabled: true, URL: storetest.Postgres(t)},
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if _, err := st.PG.Exec(ctx, storetest.Schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := st.PG.Exec(ctx, `INSERT INTO people (id, slug, first_name, last_name) VALUES
		(3, 'shakira', NULL, 'Shakira'),
		(1, 'pedro-garcia', 'Pedro', 'García'),
		(2, 'a-j-bogani', 'A.', 'J. Bogani')`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	run := func(fn func(Storage) error) error { return repokit.InTx(ctx, st.PG, NewPG(), fn) }

	var ids []int64
	after := int64(0)
	for {
		var page int
		err := run(func(s Storage) error {
			rows, next, err := s.List(ctx, after, 2)
			for _, r := range rows {
				ids = append(ids, r.ID)
			}
			page, after = len(rows), next
			return err
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if page == 0 {
			break
		}
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids = %v", ids)
	}

	first, last := "A. J.", "Bogani"
	if err := run(func(s Storage) error { return s.UpdateName(ctx, 2, &first, &last) }); err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	blank := "  "
	if err := run(func(s Storage) error { return s.UpdateName(ctx, 3, &blank, &last) }); err != nil {
		t.Fatalf("UpdateName blank: %v", err)
	}
	err = run(func(s Storage) error { return s.UpdateName(ctx, 99, nil, &last) })
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing id should be NotFound, got %v", err)
	}

	var got []string
	err = run(func(s Storage) error {
		rows, _, err := s.List(ctx, 1, 10)
		for _, r := range rows {
			f := "<nil>"
			if r.FirstName != nil {
				f = *r.FirstName
			}
			got = append(got, f+"|"+*r.LastName)
		}
		return err
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0] != "A. J.|Bogani" || got[1] != "<nil>|Bogani" {
		t.Fatalf("after update = %q", got)
	}
}
