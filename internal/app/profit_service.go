package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/example/tradepost/internal/core/profit"
	"github.com/example/tradepost/internal/models"
	"github.com/example/tradepost/internal/ports/primary"
)

// ProfitService implements primary.ProfitService.
//
// Items on the nonSellable list never go through price resolution for their
// sell price; the market does not trade them and they carry a fixed nominal
// value instead.
type ProfitService struct {
	resolver    primary.ResolverService
	nonSellable map[string]int64
	log         zerolog.Logger
}

// NewProfitService creates a profit calculator. nonSellable maps output
// names to their nominal sell price; nil means no exceptions.
func NewProfitService(resolver primary.ResolverService, nonSellable map[string]int64, log zerolog.Logger) *ProfitService {
	return &ProfitService{
		resolver:    resolver,
		nonSellable: nonSellable,
		log:         log,
	}
}

// Compute turns a recipe descriptor into a profit figure. Resolution
// failures degrade the result to Resolvable=false rather than erroring, so
// one unpriced ingredient never prevents other recipes from rendering.
func (s *ProfitService) Compute(ctx context.Context, desc models.RecipeDescriptor) (*models.ProfitResult, error) {
	if err := profit.ValidateDescriptor(desc); err != nil {
		return nil, fmt.Errorf("invalid recipe descriptor: %w", err)
	}

	sellPrice, ok := s.sellPrice(ctx, desc.OutputName)
	if !ok {
		result := profit.Unresolvable(0)
		return &result, nil
	}

	costs := make([]int64, len(desc.Requirements))
	var (
		mu     sync.Mutex
		misses []string
	)

	// Requirements resolve concurrently; completion order does not matter
	// since costs aggregate by position, but every resolution must finish
	// before a result is produced.
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range desc.Requirements {
		i, req := i, req
		g.Go(func() error {
			resolved, err := s.resolver.Resolve(gctx, req.ItemName)
			if err != nil {
				mu.Lock()
				misses = append(misses, req.ItemName)
				mu.Unlock()
				s.log.Debug().Err(err).Str("item", req.ItemName).Msg("requirement did not resolve")
				return nil
			}
			costs[i] = resolved.MinimumPrice * int64(req.Quantity)
			return nil
		})
	}
	// Workers only record misses, so Wait cannot fail.
	_ = g.Wait()

	if len(misses) > 0 {
		s.log.Info().
			Str("recipe", desc.OutputName).
			Strs("unpriced", misses).
			Msg("recipe is unresolvable")
		result := profit.Unresolvable(sellPrice)
		return &result, nil
	}

	var totalInputCost int64
	for _, cost := range costs {
		totalInputCost += cost
	}

	result := profit.Compute(sellPrice, totalInputCost, desc.CraftTimeSeconds)
	return &result, nil
}

// sellPrice determines the base sell price of the output, honoring the
// non-sellable exception list before consulting the resolver.
func (s *ProfitService) sellPrice(ctx context.Context, outputName string) (int64, bool) {
	if nominal, fixed := s.nonSellable[outputName]; fixed {
		return nominal, true
	}

	resolved, err := s.resolver.Resolve(ctx, outputName)
	if err != nil {
		s.log.Debug().Err(err).Str("item", outputName).Msg("output did not resolve")
		return 0, false
	}
	return resolved.MinimumPrice, true
}
