// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests load the authoritative schema via db.GetSchemaSQL() instead of
// hardcoding CREATE TABLE statements, so repository code that drifts from
// the real schema fails immediately with "no such column".
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/tradepost/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPrice inserts a test price row.
func seedPrice(t *testing.T, database *sql.DB, id int64, name string, minimumPrice int64) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO prices (id, hashed_id, name, minimum_price) VALUES (?, ?, ?, ?)",
		id, "test-hash", name, minimumPrice,
	)
	if err != nil {
		t.Fatalf("failed to seed price: %v", err)
	}
}
