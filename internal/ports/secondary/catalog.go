package secondary

// CatalogItem is one entry of the static, non-market price list (for items
// sold at fixed prices, e.g. token-shop stock).
type CatalogItem struct {
	ID    int64
	Name  string
	Price int64
}

// CatalogProvider defines the secondary port for the static catalog.
// Implementations are immutable in-memory tables; Lookup does no I/O.
type CatalogProvider interface {
	// Lookup returns the catalog entry for an exact, case-sensitive name
	// match.
	Lookup(name string) (CatalogItem, bool)
}
