package store

import (
	"context"
	"fmt"

	"filmnames/internal/platform/store/pg"
	"filmnames/internal/platform/store/rds"
)

// openPG opens the pool, waits for the server and wraps it with the traced adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}
	if err := p.Ready(ctx, pg.Retry{Attempts: cfg.PG.ConnectRetries, Timeout: cfg.PG.PingTimeout}); err != nil {
		p.Close()
		return nil, err
	}
	s.Log.Debug().Str("app", cfg.AppName).Int32("max_conns", cfg.PG.MaxConns).Msg("postgres connected")
	return newPGAdapter(p), nil
}

// openRedis dials redis and fails fast when the first ping does not answer
func openRedis(ctx context.Context, cfg Config, s *Store) (Redis, error) {
	c, err := rds.Open(ctx, rds.Config{
		Addr:     cfg.RDS.Addr,
		Password: cfg.RDS.Password,
		DB:       cfg.RDS.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("redis open: %w", err)
	}
	s.Log.Debug().Str("addr", cfg.RDS.Addr).Int("db", cfg.RDS.DB).Msg("redis connected")
	return newRedisAdapter(c), nil
}
