package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tradepost/internal/core/profit"
	"github.com/example/tradepost/internal/models"
	"github.com/example/tradepost/internal/wire"
)

// ProfitCmd returns the profit command
func ProfitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profit [recipes.json]",
		Short: "Compute profit per hour for crafting recipes",
		Long: `Profit reads recipe descriptors (a JSON object or array of objects with
outputName, craftTimeSeconds and requirements) and computes the expected
profit per hour for each, after the 12% market tax. Recipes with any
unpriced ingredient are reported as unresolvable rather than showing a
partial figure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := wire.CommandContext()
			defer cancel()

			recipes, err := decodeRecipes(args[0])
			if err != nil {
				return err
			}

			store := wire.PriceService()
			store.Open(ctx)
			if err := store.AwaitReady(ctx); err != nil {
				return fmt.Errorf("price cache unavailable: %w", err)
			}

			calc := wire.ProfitService()
			for _, desc := range recipes {
				result, err := calc.Compute(ctx, desc)
				if err != nil {
					// Bad descriptors are isolated per recipe.
					fmt.Printf("%s %s: %v\n", color.RedString("✗"), desc.OutputName, err)
					continue
				}

				if !result.Resolvable {
					fmt.Printf("%s %s: unresolvable (missing ingredient prices)\n",
						color.YellowString("?"), desc.OutputName)
					continue
				}

				fmt.Printf("%s %s: %d coins/hour (sell %d, after tax %d, inputs %d, per craft %d)\n",
					color.GreenString("✓"), desc.OutputName,
					result.ProfitPerHour, result.SellPrice, result.SellPriceAfterTax,
					result.TotalInputCost, result.ProfitPerCraft)
			}
			return nil
		},
	}
}

// decodeRecipes reads one descriptor or an array of descriptors and
// validates each at the boundary.
func decodeRecipes(path string) ([]models.RecipeDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	var recipes []models.RecipeDescriptor
	if err := json.Unmarshal(data, &recipes); err != nil {
		var single models.RecipeDescriptor
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to parse recipe file: %w", err)
		}
		recipes = []models.RecipeDescriptor{single}
	}

	for _, desc := range recipes {
		if err := profit.ValidateDescriptor(desc); err != nil {
			return nil, fmt.Errorf("invalid recipe: %w", err)
		}
	}
	return recipes, nil
}
