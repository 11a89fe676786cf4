package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/example/tradepost/internal/ports/primary"
	"github.com/example/tradepost/internal/ports/secondary"
)

// ResolverService implements primary.ResolverService. The static catalog is
// consulted first and short-circuits without touching the store; only a
// catalog miss falls through to the price cache.
type ResolverService struct {
	catalog secondary.CatalogProvider
	store   primary.PriceService
	log     zerolog.Logger
}

// NewResolverService creates a resolver over the given sources.
func NewResolverService(catalog secondary.CatalogProvider, store primary.PriceService, log zerolog.Logger) *ResolverService {
	return &ResolverService{
		catalog: catalog,
		store:   store,
		log:     log,
	}
}

// Resolve returns the price for an item name. A name present in both
// sources resolves to the catalog value.
func (s *ResolverService) Resolve(ctx context.Context, name string) (*primary.ResolvedPrice, error) {
	if item, ok := s.catalog.Lookup(name); ok {
		return &primary.ResolvedPrice{
			ID:           item.ID,
			Name:         item.Name,
			MinimumPrice: item.Price,
			Source:       primary.SourceCatalog,
		}, nil
	}

	item, err := s.store.Lookup(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) && !errors.Is(err, ErrStoreNotReady) {
			// Transaction-level failures are logged, not retried.
			s.log.Error().Err(err).Str("name", name).Msg("store lookup failed")
		}
		return nil, err
	}

	return &primary.ResolvedPrice{
		ID:           item.ID,
		Name:         item.Name,
		MinimumPrice: item.MinimumPrice,
		Source:       primary.SourceStore,
	}, nil
}
