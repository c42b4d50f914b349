// Package service provides the people service implementation
package service

import (
	"context"
	"time"

	"filmnames/internal/modkit/repokit"
	perr "filmnames/internal/platform/errors"
	"filmnames/internal/services/people/domain"
	"filmnames/internal/services/people/repo"
)

// Config for the people service
type Config struct {
	// HardLimit caps List page sizes; defaults to 1000 if <=0
	HardLimit int
	// LockTimeout bounds row lock waits on update; zero disables
	LockTimeout time.Duration
}

// Service implements domain.ReaderPort and domain.WriterPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

var (
	_ domain.ReaderPort = (*Service)(nil)
	_ domain.WriterPort = (*Service)(nil)
)

// New constructs a new people service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 1000
	}
	if cfg.LockTimeout > 0 {
		db = repokit.WithBeginHooks(db, repokit.LockTimeout(cfg.LockTimeout))
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Record, int64, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	if in.After < 0 {
		return nil, 0, perr.InvalidArgf("people list: negative cursor %d", in.After)
	}

	var (
		rows []domain.Record
		next int64
	)
	err := repokit.InTx(ctx, s.DB, s.Binder, func(st repo.Storage) error {
		var err error
		rows, next, err = st.List(ctx, in.After, limit)
		return err
	})
	if err != nil {
		return nil, in.After, perr.FromPostgresf(err, "list people after %d", in.After)
	}
	return rows, next, nil
}

// UpdateName implements domain.WriterPort; each call is its own transaction
func (s *Service) UpdateName(ctx context.Context, id int64, first, last *string) error {
	err := repokit.InTx(ctx, s.DB, s.Binder, func(st repo.Storage) error {
		return st.UpdateName(ctx, id, first, last)
	})
	switch {
	case err == nil:
		return nil
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return perr.WithOp(perr.NotFoundf("person %d not found", id), "people.update_name")
	case perr.IsCode(err, perr.ErrorCodeConflict):
		return perr.WithOp(err, "people.update_name")
	default:
		return perr.WithOp(perr.FromPostgresf(err, "update name of person %d", id), "people.update_name")
	}
}
