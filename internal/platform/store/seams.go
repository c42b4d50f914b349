package store

import (
	"context"
	"time"
)

// Row is one result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; callers must Close it
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is what repos run sql against, either the pool or an open tx
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also open a transaction;
// fn's error rolls back, nil commits
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Redis holds named string sets with a ttl
type Redis interface {
	// Members is empty for a missing key
	Members(ctx context.Context, key string) ([]string, error)
	// ReplaceSet swaps the whole set in one step
	ReplaceSet(ctx context.Context, key string, members []string, ttl time.Duration) error
	Close() error
}

type Pinger interface{ Ping(context.Context) error }
