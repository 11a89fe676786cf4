// Package profit contains the pure business logic for crafting profit
// calculations. This is part of the Functional Core - no I/O, only pure
// functions; price resolution happens in the application layer.
package profit

import (
	"fmt"
	"math"

	"github.com/example/tradepost/internal/models"
)

// taxRate is the fraction of the sell price kept after the fixed 12%
// market tax.
const taxRate = 0.88

// AfterTax returns the sell price after the market tax, always rounded down.
func AfterTax(sellPrice int64) int64 {
	return int64(math.Floor(float64(sellPrice) * taxRate))
}

// CraftsPerHour returns how many crafts fit in one hour for the given
// craft duration.
func CraftsPerHour(craftTimeSeconds float64) float64 {
	return 3600 / craftTimeSeconds
}

// Compute produces the full profit figure for a recipe whose output sells
// for sellPrice and whose ingredients cost totalInputCost in total.
// craftTimeSeconds must be positive; descriptors are validated before they
// reach this point.
func Compute(sellPrice, totalInputCost int64, craftTimeSeconds float64) models.ProfitResult {
	afterTax := AfterTax(sellPrice)
	perCraft := afterTax - totalInputCost
	perHour := int64(math.Round(float64(perCraft) * CraftsPerHour(craftTimeSeconds)))

	return models.ProfitResult{
		SellPrice:         sellPrice,
		SellPriceAfterTax: afterTax,
		TotalInputCost:    totalInputCost,
		ProfitPerCraft:    perCraft,
		ProfitPerHour:     perHour,
		Resolvable:        true,
	}
}

// Unresolvable produces the degraded result for a recipe with at least one
// unpriced ingredient. Cost-derived fields are zeroed; the sell price is
// kept when it was known so the caller can still display it.
func Unresolvable(sellPrice int64) models.ProfitResult {
	return models.ProfitResult{
		SellPrice:         sellPrice,
		SellPriceAfterTax: AfterTax(sellPrice),
		Resolvable:        false,
	}
}

// ValidateDescriptor checks a recipe descriptor at the input boundary.
func ValidateDescriptor(desc models.RecipeDescriptor) error {
	if desc.OutputName == "" {
		return fmt.Errorf("recipe has an empty output name")
	}
	if desc.CraftTimeSeconds <= 0 {
		return fmt.Errorf("recipe %s has a non-positive craft time %g", desc.OutputName, desc.CraftTimeSeconds)
	}
	for _, req := range desc.Requirements {
		if req.ItemName == "" {
			return fmt.Errorf("recipe %s has a requirement with an empty item name", desc.OutputName)
		}
		if req.Quantity <= 0 {
			return fmt.Errorf("recipe %s requires a non-positive quantity of %s", desc.OutputName, req.ItemName)
		}
	}
	return nil
}
