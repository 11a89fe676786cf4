package app

import "errors"

var (
	// ErrStoreNotReady means an operation needed the price store before it
	// finished opening. Ingestion absorbs this by queueing; resolution
	// surfaces it as a resolution failure.
	ErrStoreNotReady = errors.New("price store is not ready")

	// ErrItemNotFound means neither the static catalog nor the price store
	// knows the item name. Not fatal: the dependent profit result degrades
	// to unresolvable.
	ErrItemNotFound = errors.New("item not found")
)
