// Package domain defines the ports of the known given names module
package domain

import (
	"context"

	"filmnames/internal/core/names"
)

// ReaderPort hands out whole known-name snapshots
type ReaderPort interface {
	// KnownNames returns the current snapshot; callers keep it for one batch
	KnownNames(ctx context.Context) (names.KnownSet, error)
}

// SourcePort lists raw given names from a backing store
type SourcePort interface {
	ListNames(ctx context.Context) ([]string, error)
}
