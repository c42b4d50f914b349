// Package service provides known given name sources and the cached snapshot reader
package service

import (
	"context"

	"filmnames/internal/modkit/repokit"
	perr "filmnames/internal/platform/errors"
	"filmnames/internal/services/knownnames/repo"
)

// PGSource implements domain.SourcePort over Postgres
type PGSource struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
}

// NewPGSource constructs a Postgres backed source
func NewPGSource(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *PGSource {
	return &PGSource{DB: db, Binder: b}
}

// ListNames implements domain.SourcePort
func (s *PGSource) ListNames(ctx context.Context) ([]string, error) {
	var out []string
	err := repokit.InTx(ctx, s.DB, s.Binder, func(st repo.Storage) error {
		var err error
		out, err = st.ListNames(ctx)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "list known first names")
	}
	return out, nil
}
