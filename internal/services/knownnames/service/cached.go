package service

import (
	"context"
	"sync"
	"time"

	"filmnames/internal/core/names"
	perr "filmnames/internal/platform/errors"
	"filmnames/internal/platform/logger"
	ptime "filmnames/internal/platform/time"
	"filmnames/internal/services/knownnames/domain"
)

// SharedSet is the optional cross-process cache; store.Redis satisfies it
type SharedSet interface {
	Members(ctx context.Context, key string) ([]string, error)
	ReplaceSet(ctx context.Context, key string, members []string, ttl time.Duration) error
}

// Config for the cached reader
type Config struct {
	TTL       time.Duration // defaults to 5m
	SharedKey string        // redis key; defaults to DefaultSharedKey
	Extra     []string      // always merged into every snapshot
}

// DefaultSharedKey is the redis set holding the distinct names
const DefaultSharedKey = "filmnames:known_first_names"

// Cached implements domain.ReaderPort with an in-process snapshot and an optional shared layer
type Cached struct {
	src    domain.SourcePort
	shared SharedSet
	cfg    Config
	log    *logger.Logger

	mu       sync.Mutex
	snap     names.KnownSet
	loaded   bool
	loadedAt time.Time
}

var _ domain.ReaderPort = (*Cached)(nil)

// NewCached wraps src; shared may be nil
func NewCached(src domain.SourcePort, shared SharedSet, cfg Config) *Cached {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.SharedKey == "" {
		cfg.SharedKey = DefaultSharedKey
	}
	return &Cached{src: src, shared: shared, cfg: cfg, log: logger.Named("knownnames")}
}

// KnownNames returns the cached snapshot, refreshing it once the TTL has passed.
// Concurrent callers wait for a single refresh. A failed refresh is returned as an
// error; the old snapshot is not served in its place
func (c *Cached) KnownNames(ctx context.Context) (names.KnownSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && ptime.Since(c.loadedAt) < c.cfg.TTL {
		return c.snap, nil
	}

	xs, err := c.load(ctx)
	if err != nil {
		c.loaded = false
		code := perr.CodeOf(err)
		if code == perr.ErrorCodeUnknown {
			code = perr.ErrorCodeUnavailable
		}
		return names.KnownSet{}, perr.Wrap(err, code, "load known first names")
	}

	c.snap = names.NewKnownSet(xs...).With(c.cfg.Extra...)
	c.loaded = true
	c.loadedAt = ptime.Now()
	c.log.Debug().Int("names", c.snap.Len()).Dur("ttl", c.cfg.TTL).Msg("known names snapshot refreshed")
	return c.snap, nil
}

// Invalidate drops the in-process snapshot; the next call reloads
func (c *Cached) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}

// load prefers the shared set, falls back to the source and repopulates the shared set.
// Shared cache failures are logged and never fail the load
func (c *Cached) load(ctx context.Context) ([]string, error) {
	if c.shared != nil {
		xs, err := c.shared.Members(ctx, c.cfg.SharedKey)
		switch {
		case err != nil:
			c.log.Warn().Err(err).Str("key", c.cfg.SharedKey).Msg("shared known names read failed; using source")
		case len(xs) > 0:
			return xs, nil
		}
	}

	xs, err := c.src.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	if c.shared != nil && len(xs) > 0 {
		if err := c.shared.ReplaceSet(ctx, c.cfg.SharedKey, xs, c.cfg.TTL); err != nil {
			c.log.Warn().Err(err).Str("key", c.cfg.SharedKey).Msg("shared known names write failed")
		}
	}
	return xs, nil
}
