// Package domain defines the person name record and its ports
package domain

// Record is the stored name view of one person
type Record struct {
	ID        int64
	Slug      string
	FirstName *string
	LastName  *string
}

// ListInput drives keyset pagination by id
type ListInput struct {
	After int64 // zero value = from start
	Limit int   // capped by the service
}
