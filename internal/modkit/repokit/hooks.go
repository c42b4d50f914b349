package repokit

import (
	"context"
	"strconv"
	"time"
)

// BeginHook runs first inside every transaction, on the tx's Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// LockTimeout makes row lock waits fail after d instead of blocking
func LockTimeout(d time.Duration) BeginHook {
	stmt := "SET LOCAL lock_timeout = '" + strconv.FormatInt(d.Milliseconds(), 10) + "ms'"
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, stmt)
		return err
	}
}

// WithBeginHooks returns inner whose Tx runs hooks in order before fn.
// Statements outside a tx pass straight through
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return hooked{TxRunner: inner, hooks: hooks}
}

type hooked struct {
	TxRunner
	hooks []BeginHook
}

func (h hooked) Tx(ctx context.Context, fn func(Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, run := range h.hooks {
			if err := run(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}
