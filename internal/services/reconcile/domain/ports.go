package domain

import "context"

// RunnerPort is the external port for one reconciliation batch
type RunnerPort interface {
	Run(ctx context.Context, opts RunOptions) (Summary, error)
}
