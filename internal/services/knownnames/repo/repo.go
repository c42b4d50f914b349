// Package repo provides known given name sources: Postgres and a YAML file
package repo

import (
	"context"

	"filmnames/internal/modkit/repokit"
	"filmnames/internal/platform/store"
)

// Storage is the Postgres view over known_first_names
type Storage interface {
	ListNames(ctx context.Context) ([]string, error)
}

type binder struct{}

// NewPG returns a Postgres binder for Storage
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// ListNames returns distinct, lowercased, non-blank names
func (s *pg) ListNames(ctx context.Context) ([]string, error) {
	const q = `
		SELECT DISTINCT lower(name)
		FROM known_first_names
		WHERE name IS NOT NULL AND btrim(name) <> ''`
	return store.Many(ctx, s.q, func(r store.Row) (string, error) {
		var n string
		err := r.Scan(&n)
		return n, err
	}, q)
}
