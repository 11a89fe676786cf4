// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/tradepost/internal/db"
	"github.com/example/tradepost/internal/ports/secondary"
)

// PriceRepository implements secondary.PriceRepository with SQLite.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new SQLite price repository.
func NewPriceRepository(database *sql.DB) *PriceRepository {
	return &PriceRepository{db: database}
}

// UpsertBatch writes all rows inside a single transaction so the batch is
// atomic: either every record becomes visible or none do. INSERT OR REPLACE
// keeps overwrite semantics last-write-wins per id.
func (r *PriceRepository) UpsertBatch(ctx context.Context, rows []*secondary.PriceRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin upsert transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO prices (id, hashed_id, name, minimum_price, tier) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		var tier sql.NullInt64
		if row.Tier != nil {
			tier = sql.NullInt64{Int64: int64(*row.Tier), Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, row.ID, row.HashedID, row.Name, row.MinimumPrice, tier); err != nil {
			return fmt.Errorf("failed to upsert price %d (%s): %w", row.ID, row.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert batch: %w", err)
	}

	return nil
}

// GetByName retrieves the first record matching the given name.
// The name index is non-unique; ordering by id keeps the result stable.
func (r *PriceRepository) GetByName(ctx context.Context, name string) (*secondary.PriceRow, error) {
	return r.getRow(ctx,
		"SELECT id, hashed_id, name, minimum_price, tier FROM prices WHERE name = ? ORDER BY id LIMIT 1",
		name,
	)
}

// GetByID retrieves a record by its primary key.
func (r *PriceRepository) GetByID(ctx context.Context, id int64) (*secondary.PriceRow, error) {
	return r.getRow(ctx,
		"SELECT id, hashed_id, name, minimum_price, tier FROM prices WHERE id = ?",
		id,
	)
}

func (r *PriceRepository) getRow(ctx context.Context, query string, arg any) (*secondary.PriceRow, error) {
	var (
		hashedID sql.NullString
		tier     sql.NullInt64
	)

	row := &secondary.PriceRow{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&row.ID, &hashedID, &row.Name, &row.MinimumPrice, &tier)

	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}

	row.HashedID = hashedID.String
	if tier.Valid {
		t := int(tier.Int64)
		row.Tier = &t
	}

	return row, nil
}

// Count returns the number of cached price records.
func (r *PriceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM prices").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count prices: %w", err)
	}
	return count, nil
}

// SchemaVersion returns the applied schema version of the underlying file.
func (r *PriceRepository) SchemaVersion(ctx context.Context) (int, error) {
	version, err := db.SchemaVersion(r.db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
