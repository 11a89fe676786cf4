package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the price cache with development fixtures.
// Uses realistic ids and values covering tiered and untiered items.
func SeedFixtures(database *sql.DB) error {
	prices := []struct {
		id     int64
		hashed string
		name   string
		min    int64
		tier   sql.NullInt64
	}{
		{101, "f3a91c", "Iron Ore", 1000, sql.NullInt64{Int64: 1, Valid: true}},
		{102, "8b20de", "Coal", 25, sql.NullInt64{}},
		{103, "77c4aa", "Oak Log", 12, sql.NullInt64{}},
		{104, "d951f0", "Healing Potion", 100, sql.NullInt64{Int64: 1, Valid: true}},
		{105, "0be377", "Silk Thread", 340, sql.NullInt64{Int64: 0, Valid: true}},
	}

	for _, p := range prices {
		if _, err := database.Exec(
			"INSERT OR REPLACE INTO prices (id, hashed_id, name, minimum_price, tier) VALUES (?, ?, ?, ?, ?)",
			p.id, p.hashed, p.name, p.min, p.tier,
		); err != nil {
			return fmt.Errorf("seed prices: %w", err)
		}
	}

	return nil
}
