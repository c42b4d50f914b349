// Package repokit holds the sql seams repos are written against and the tx helpers around them
package repokit

import (
	"context"

	"filmnames/internal/platform/store"
)

type (
	Queryer    = store.RowQuerier
	TxRunner   = store.TxRunner
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// Binder builds a repo on top of a Queryer, the pool or an open tx
type Binder[T any] interface {
	Bind(Queryer) T
}

type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// InTx opens one transaction, binds the repo to it and runs fn
func InTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error {
		if q == nil {
			panic("repokit: tx yielded a nil Queryer")
		}
		return fn(b.Bind(q))
	})
}
