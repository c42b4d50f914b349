package domain

import "context"

// ReaderPort lists person records in id order
type ReaderPort interface {
	// List returns up to Limit records with id > After and the id to resume from.
	// An empty page means the scan is done
	List(ctx context.Context, in ListInput) (rows []Record, next int64, err error)
}

// WriterPort persists a name split for one record
type WriterPort interface {
	// UpdateName writes both parts; nil stores NULL. A missing id is a NotFound error
	UpdateName(ctx context.Context, id int64, first, last *string) error
}
