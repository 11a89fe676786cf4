package models

// PriceRecord is a cached market price for a single item.
// Records are created and overwritten only through ingestion; nothing in
// tradepost ever deletes them (there is no eviction or staleness policy).
type PriceRecord struct {
	ID           int64
	HashedID     string
	Name         string
	MinimumPrice int64
	Tier         *int // absent for untiered items
}
