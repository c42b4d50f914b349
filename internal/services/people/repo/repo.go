// Package repo provides the Postgres repository for person names
package repo

import (
	"context"

	"filmnames/internal/modkit/repokit"
	"filmnames/internal/platform/store"
	str "filmnames/internal/platform/strings"
	"filmnames/internal/services/people/domain"
)

// Storage is the people table surface the name tools need
type Storage interface {
	List(ctx context.Context, after int64, limit int) ([]domain.Record, int64, error)
	UpdateName(ctx context.Context, id int64, first, last *string) error
}

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// List returns records ordered by id after the cursor
func (s *pg) List(ctx context.Context, after int64, limit int) ([]domain.Record, int64, error) {
	const q = `
		SELECT id, COALESCE(slug, ''), first_name, last_name
		FROM people
		WHERE id > $1
		ORDER BY id
		LIMIT $2`
	out, err := store.Many(ctx, s.q, func(r store.Row) (domain.Record, error) {
		var rec domain.Record
		err := r.Scan(&rec.ID, &rec.Slug, &rec.FirstName, &rec.LastName)
		return rec, err
	}, q, after, limit)
	if err != nil {
		return nil, after, err
	}
	next := after
	if n := len(out); n > 0 {
		next = out[n-1].ID
	}
	return out, next, nil
}

// UpdateName sets both name parts; blanks are stored as NULL
func (s *pg) UpdateName(ctx context.Context, id int64, first, last *string) error {
	const q = `
		UPDATE people
		SET first_name = $2, last_name = $3, updated_at = now()
		WHERE id = $1`
	return store.ExecOne(ctx, s.q, q, id, str.SQLNullPtr(first), str.SQLNullPtr(last))
}
