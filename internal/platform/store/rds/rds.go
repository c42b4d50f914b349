// Package rds provides a Redis client used for shared, short-lived snapshots
package rds

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// RDS wraps a go-redis client
type RDS struct {
	Client *redis.Client
}

// Open creates a client and verifies it answers a PING
func Open(ctx context.Context, cfg Config) (*RDS, error) {
	dt := cfg.DialTimeout
	if dt <= 0 {
		dt = 2 * time.Second
	}
	c := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dt,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &RDS{Client: c}, nil
}

// Close closes the client
func (r *RDS) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
