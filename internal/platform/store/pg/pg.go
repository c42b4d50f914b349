// Package pg opens the pgx pool used for the people and known-name tables
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool; zero values keep pgx defaults
type Config struct {
	URL      string
	AppName  string // sent as application_name when set
	MaxConns int32
	SlowMs   int
}

// Retry bounds Ready; zero fields take the defaults below
type Retry struct {
	Attempts   int           // default 20
	Timeout    time.Duration // per ping, default 3s
	Backoff    time.Duration // first wait, default 150ms
	MaxBackoff time.Duration // default 2s
}

func (r Retry) withDefaults() Retry {
	if r.Attempts <= 0 {
		r.Attempts = 20
	}
	if r.Timeout <= 0 {
		r.Timeout = 3 * time.Second
	}
	if r.Backoff <= 0 {
		r.Backoff = 150 * time.Millisecond
	}
	if r.MaxBackoff < r.Backoff {
		r.MaxBackoff = max(2*time.Second, r.Backoff)
	}
	return r
}

// PG owns the pool and the statement tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int

	ping func(context.Context) error
}

// seams for tests
var (
	newPool = pgxpool.NewWithConfig
	sleep   = time.Sleep
)

// Open parses cfg.URL and builds a lazy pool; call Ready to wait for the server
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg: new pool: %w", err)
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs, ping: pool.Ping}, nil
}

// Ready pings until the server answers, doubling the wait between attempts.
// ctx cancellation ends the loop early with ctx.Err()
func (p *PG) Ready(ctx context.Context, r Retry) error {
	r = r.withDefaults()
	wait := r.Backoff

	var last error
	for i := 0; i < r.Attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, r.Timeout)
		last = p.ping(pctx)
		cancel()
		if last == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if i == r.Attempts-1 {
			break
		}
		sleep(wait)
		wait = min(wait*2, r.MaxBackoff)
	}
	return fmt.Errorf("pg: no answer after %d attempts: %w", r.Attempts, last)
}

// Close is safe on a nil or half-built client
func (p *PG) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	p.Pool.Close()
}
