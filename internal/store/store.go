// Package store abstracts where a panel module keeps its records: some
// modules talk to the API service, the rest live entirely in local
// persistent storage. Both sides satisfy the same contract so moving a
// module onto a real backend is a drop-in swap.
package store

import (
	"context"
	"errors"
)

// Record is one flat entity row keyed by field name.
type Record map[string]any

var ErrNotFound = errors.New("record not found")

// RecordStore is the create/mutate/destroy contract every module page
// works against. All three write operations return the affected record.
type RecordStore interface {
	List(ctx context.Context) ([]Record, error)
	Add(ctx context.Context, fields Record) (Record, error)
	Edit(ctx context.Context, id string, fields Record) (Record, error)
	Delete(ctx context.Context, id string) (Record, error)
}
