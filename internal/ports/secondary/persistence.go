// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("price record not found")

// PriceRow represents a price record as stored in persistence.
type PriceRow struct {
	ID           int64
	HashedID     string
	Name         string
	MinimumPrice int64
	Tier         *int
}

// PriceRepository defines the secondary port for price persistence.
type PriceRepository interface {
	// UpsertBatch writes all rows as a single atomic batch, replacing any
	// existing record with the same id (last-write-wins).
	UpsertBatch(ctx context.Context, rows []*PriceRow) error

	// GetByName retrieves the first record matching the given name via the
	// secondary index. Returns ErrNotFound when absent.
	GetByName(ctx context.Context, name string) (*PriceRow, error)

	// GetByID retrieves a record by its primary key.
	// Returns ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*PriceRow, error)

	// Count returns the number of cached price records.
	Count(ctx context.Context) (int, error)

	// SchemaVersion returns the applied schema version of the underlying
	// storage.
	SchemaVersion(ctx context.Context) (int, error)
}
