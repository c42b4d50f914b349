// Package store opens the optional backends the name tools share: Postgres for
// people and known names, Redis for known-name snapshots
package store

import (
	"context"
	"errors"
	"fmt"

	"filmnames/internal/platform/logger"
)

// Store holds whichever backends were enabled; a disabled backend is nil
type Store struct {
	Log logger.Logger
	PG  TxRunner
	RDS Redis
}

// Open applies opts then connects each backend cfg enables. If a later
// backend fails, the ones already open are closed
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, apply := range opts {
		if err := apply(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	if cfg.PG.Enabled {
		db, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = db
	}
	if cfg.RDS.Enabled {
		r, err := openRedis(ctx, cfg, s)
		if err != nil {
			return nil, errors.Join(err, s.Close(ctx))
		}
		s.RDS = r
	}
	return s, nil
}

type backend struct {
	name string
	v    any
}

// backends lists the open backends in open order
func (s *Store) backends() []backend {
	var out []backend
	if s.PG != nil {
		out = append(out, backend{"pg", s.PG})
	}
	if s.RDS != nil {
		out = append(out, backend{"redis", s.RDS})
	}
	return out
}

// Guard pings every backend that answers Ping and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, b := range s.backends() {
		if p, ok := b.v.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close shuts every open backend, redis first
func (s *Store) Close(_ context.Context) error {
	var errs []error
	open := s.backends()
	for i := len(open) - 1; i >= 0; i-- {
		if c, ok := open[i].v.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
