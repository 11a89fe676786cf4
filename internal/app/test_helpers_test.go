package app

import (
	"context"
	"sort"
	"sync"

	"github.com/example/tradepost/internal/ports/primary"
	"github.com/example/tradepost/internal/ports/secondary"
)

// Ensure services implement their primary ports.
var (
	_ primary.PriceService    = (*PriceStoreService)(nil)
	_ primary.ResolverService = (*ResolverService)(nil)
	_ primary.ProfitService   = (*ProfitService)(nil)
)

// mockPriceRepository implements secondary.PriceRepository for testing.
// It records every applied batch in order so tests can assert drain
// ordering, and offers an onUpsert hook for re-entrancy scenarios.
type mockPriceRepository struct {
	mu        sync.Mutex
	records   map[int64]*secondary.PriceRow
	batches   [][]*secondary.PriceRow
	upsertErr error
	onUpsert  func(batchIndex int)
}

func newMockPriceRepository() *mockPriceRepository {
	return &mockPriceRepository{records: make(map[int64]*secondary.PriceRow)}
}

func (m *mockPriceRepository) UpsertBatch(ctx context.Context, rows []*secondary.PriceRow) error {
	m.mu.Lock()
	if m.upsertErr != nil {
		m.mu.Unlock()
		return m.upsertErr
	}
	for _, row := range rows {
		m.records[row.ID] = row
	}
	m.batches = append(m.batches, rows)
	index := len(m.batches) - 1
	hook := m.onUpsert
	m.mu.Unlock()

	if hook != nil {
		hook(index)
	}
	return nil
}

func (m *mockPriceRepository) GetByName(ctx context.Context, name string) (*secondary.PriceRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if m.records[id].Name == name {
			return m.records[id], nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPriceRepository) GetByID(ctx context.Context, id int64) (*secondary.PriceRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row, ok := m.records[id]; ok {
		return row, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPriceRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), nil
}

func (m *mockPriceRepository) SchemaVersion(ctx context.Context) (int, error) {
	return 1, nil
}

// mockCatalog implements secondary.CatalogProvider over a plain map.
type mockCatalog struct {
	items map[string]secondary.CatalogItem
}

func newMockCatalog(items ...secondary.CatalogItem) *mockCatalog {
	byName := make(map[string]secondary.CatalogItem)
	for _, item := range items {
		byName[item.Name] = item
	}
	return &mockCatalog{items: byName}
}

func (m *mockCatalog) Lookup(name string) (secondary.CatalogItem, bool) {
	item, ok := m.items[name]
	return item, ok
}

// mockResolver implements primary.ResolverService for profit tests.
type mockResolver struct {
	prices map[string]int64
	errs   map[string]error
}

func (m *mockResolver) Resolve(ctx context.Context, name string) (*primary.ResolvedPrice, error) {
	if err, ok := m.errs[name]; ok {
		return nil, err
	}
	if price, ok := m.prices[name]; ok {
		return &primary.ResolvedPrice{Name: name, MinimumPrice: price, Source: primary.SourceStore}, nil
	}
	return nil, ErrItemNotFound
}
