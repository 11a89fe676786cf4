// Package primary defines the primary ports (driving interfaces) for the
// application.
package primary

import (
	"context"

	"github.com/example/tradepost/internal/core/snapshot"
)

// StoreState is the lifecycle state of the price store.
type StoreState string

const (
	// StateUnopened means Open has not been called yet.
	StateUnopened StoreState = "unopened"
	// StateOpening means the store is initializing in the background.
	StateOpening StoreState = "opening"
	// StateReady means the store accepts reads and writes.
	StateReady StoreState = "ready"
	// StateFailed means the store could not open; terminal for the instance.
	StateFailed StoreState = "failed"
)

// Item is a cached price record as exposed to callers.
type Item struct {
	ID           int64
	HashedID     string
	Name         string
	MinimumPrice int64
	Tier         *int
}

// IngestResult reports what happened to one submitted batch.
type IngestResult struct {
	// Written is the number of records upserted.
	Written int
	// Skipped is the number of entries dropped for having tier > 1.
	Skipped int
	// Queued is true when the store was still opening and the batch was
	// buffered for the ready drain instead of written.
	Queued bool
}

// StoreStats summarizes the store for status reporting.
type StoreStats struct {
	State         StoreState
	Records       int
	SchemaVersion int
}

// PriceService defines the primary port for the durable price cache.
type PriceService interface {
	// Open starts the asynchronous open lifecycle. Calling it more than
	// once is a no-op.
	Open(ctx context.Context)

	// AwaitReady blocks until the store reaches a terminal open state
	// (Ready after draining buffered batches, or Failed) or the context
	// expires. It returns the open error when the store failed.
	AwaitReady(ctx context.Context) error

	// State returns the current lifecycle state.
	State() StoreState

	// Submit ingests one snapshot batch. Batches submitted before the
	// store is ready are buffered and drained in submission order once it
	// becomes ready.
	Submit(ctx context.Context, batch []snapshot.Entry) (*IngestResult, error)

	// Lookup finds a cached price by item name.
	Lookup(ctx context.Context, name string) (*Item, error)

	// Stats reports the store state and record count.
	Stats(ctx context.Context) (*StoreStats, error)
}
