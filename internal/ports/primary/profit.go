package primary

import (
	"context"

	"github.com/example/tradepost/internal/models"
)

// PriceSource identifies which source resolved a price.
type PriceSource string

const (
	// SourceCatalog means the static catalog short-circuited the lookup.
	SourceCatalog PriceSource = "catalog"
	// SourceStore means the dynamic price cache supplied the value.
	SourceStore PriceSource = "store"
)

// ResolvedPrice is the answer to a "what does item X cost" query.
type ResolvedPrice struct {
	ID           int64
	Name         string
	MinimumPrice int64
	Source       PriceSource
}

// ResolverService defines the primary port for price resolution. It unifies
// the static catalog and the dynamic cache under one priority order: the
// catalog wins when a name exists in both.
type ResolverService interface {
	// Resolve returns the price for an item name, or ErrItemNotFound when
	// neither source has it, or ErrStoreNotReady when the store lookup was
	// needed before the store finished opening.
	Resolve(ctx context.Context, name string) (*ResolvedPrice, error)
}

// ProfitService defines the primary port for profit calculations.
type ProfitService interface {
	// Compute turns a recipe descriptor into a profit figure. A recipe
	// with any unpriced ingredient yields a result with Resolvable=false;
	// an error is returned only for invalid descriptors.
	Compute(ctx context.Context, desc models.RecipeDescriptor) (*models.ProfitResult, error)
}
