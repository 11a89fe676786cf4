// Package catalog provides the static, non-market price list. The catalog
// is an immutable in-memory table seeded at startup; lookups never touch
// the price store.
package catalog

import "github.com/example/tradepost/internal/ports/secondary"

// defaultItems is the fixed catalog of items sold at non-market prices
// (token-shop stock and vendor staples). Names are matched case-sensitively.
var defaultItems = []secondary.CatalogItem{
	{ID: 9001, Name: "Cheap Vial", Price: 2},
	{ID: 9002, Name: "Empty Bottle", Price: 1},
	{ID: 9003, Name: "Plain Thread", Price: 3},
	{ID: 9004, Name: "Water Flask", Price: 4},
	{ID: 9005, Name: "Copper Token", Price: 50},
	{ID: 9006, Name: "Silver Token", Price: 500},
	{ID: 9007, Name: "Gold Token", Price: 5000},
	{ID: 9008, Name: "Crafting Kit", Price: 120},
	{ID: 9009, Name: "Vendor Salt", Price: 6},
	{ID: 9010, Name: "Vendor Flour", Price: 8},
}

// StaticCatalog implements secondary.CatalogProvider over a fixed table.
type StaticCatalog struct {
	byName map[string]secondary.CatalogItem
}

// New creates the default static catalog.
func New() *StaticCatalog {
	return NewWithItems(defaultItems)
}

// NewWithItems creates a catalog over the given entries. Later duplicates of
// a name are ignored; the first entry wins.
func NewWithItems(items []secondary.CatalogItem) *StaticCatalog {
	byName := make(map[string]secondary.CatalogItem, len(items))
	for _, item := range items {
		if _, exists := byName[item.Name]; exists {
			continue
		}
		byName[item.Name] = item
	}
	return &StaticCatalog{byName: byName}
}

// Lookup returns the catalog entry for an exact, case-sensitive name match.
func (c *StaticCatalog) Lookup(name string) (secondary.CatalogItem, bool) {
	item, ok := c.byName[name]
	return item, ok
}
