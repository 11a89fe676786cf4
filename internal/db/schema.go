package db

import "database/sql"

// SchemaSQL is the complete schema for fresh tradepost installs.
// This is the single source of truth for the price cache schema; tests load
// it via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so
// repository code that references a missing column fails immediately.
//
// Keep this in sync with the migrations list in migrations.go.
const SchemaSQL = `
-- Cached market prices, keyed by item id with a secondary lookup by name.
-- The name index is non-unique: lookups return the first match.
CREATE TABLE IF NOT EXISTS prices (
	id INTEGER PRIMARY KEY,
	hashed_id TEXT,
	name TEXT NOT NULL,
	minimum_price INTEGER NOT NULL CHECK(minimum_price >= 0),
	tier INTEGER
);

CREATE INDEX IF NOT EXISTS idx_prices_name ON prices(name);
`

// InitSchema brings the given database up to the current schema version.
// It is idempotent across repeated opens of the same file.
func InitSchema(database *sql.DB) error {
	return RunMigrations(database)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
