package store

import (
	"context"
	"errors"
	"time"

	"filmnames/internal/platform/store/rds"

	"github.com/redis/go-redis/v9"
)

// redisAdapter adapts *rds.RDS to the store.Redis seam
type redisAdapter struct {
	inner *rds.RDS
}

var _ Redis = (*redisAdapter)(nil)

func newRedisAdapter(r *rds.RDS) *redisAdapter { return &redisAdapter{inner: r} }

func (a *redisAdapter) Members(ctx context.Context, key string) ([]string, error) {
	xs, err := a.inner.Client.SMembers(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return xs, err
}

func (a *redisAdapter) ReplaceSet(ctx context.Context, key string, members []string, ttl time.Duration) error {
	args := make([]any, len(members))
	for i, m := range members {
		args[i] = m
	}
	_, err := a.inner.Client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		if len(args) == 0 {
			return nil
		}
		p.SAdd(ctx, key, args...)
		if ttl > 0 {
			p.Expire(ctx, key, ttl)
		}
		return nil
	})
	return err
}

func (a *redisAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil || a.inner.Client == nil {
		return errors.New("store: nil redis adapter")
	}
	return a.inner.Client.Ping(ctx).Err()
}

func (a *redisAdapter) Close() error { return a.inner.Close() }
