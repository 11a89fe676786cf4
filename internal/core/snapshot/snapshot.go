// Package snapshot contains the pure logic for raw market snapshot entries.
// This is part of the Functional Core - no I/O beyond decoding, only pure
// functions over the wire shape produced by the network-interception
// collaborator.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/tradepost/internal/models"
)

// Amount is a non-negative coin amount. The snapshot source expresses it
// either as a native JSON number or as a comma-grouped decimal string
// ("1,234"); both decode to a plain integer.
type Amount int64

// UnmarshalJSON accepts either form of the wire amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty amount")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode amount string: %w", err)
		}
		n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		*a = Amount(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	*a = Amount(n)
	return nil
}

// Price is the nested price object of a snapshot entry.
type Price struct {
	Minimum Amount `json:"minimum"`
}

// Entry is one item observation inside a snapshot batch.
type Entry struct {
	ID       int64  `json:"id"`
	HashedID string `json:"hashed_id"`
	Price    Price  `json:"price"`
	Name     string `json:"name"`
	Tier     *int   `json:"tier"`
}

// Skip reports whether the entry must be dropped on ingestion.
// Only tier <= 1 price data is retained: higher tiers are upgrade variants
// of the same id and would overwrite the base price.
func (e Entry) Skip() bool {
	return e.Tier != nil && *e.Tier > 1
}

// Validate checks the decoded shape before it is allowed into the store.
func (e Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("entry id must be positive, got %d", e.ID)
	}
	if e.Name == "" {
		return fmt.Errorf("entry %d has an empty name", e.ID)
	}
	if e.Price.Minimum < 0 {
		return fmt.Errorf("entry %d (%s) has a negative minimum price", e.ID, e.Name)
	}
	return nil
}

// Record converts the entry into its persisted form.
func (e Entry) Record() models.PriceRecord {
	return models.PriceRecord{
		ID:           e.ID,
		HashedID:     e.HashedID,
		Name:         e.Name,
		MinimumPrice: int64(e.Price.Minimum),
		Tier:         e.Tier,
	}
}

// DecodeBatch decodes one snapshot batch (a JSON array of entries) and
// validates every entry that is not skipped. Invalid entries reject the
// whole batch at the boundary rather than trusting caller-provided shape.
func DecodeBatch(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot batch: %w", err)
	}
	for _, e := range entries {
		if e.Skip() {
			continue
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid snapshot entry: %w", err)
		}
	}
	return entries, nil
}
