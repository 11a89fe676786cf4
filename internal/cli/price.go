package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/tradepost/internal/app"
	"github.com/example/tradepost/internal/wire"
)

// PriceCmd returns the price command
func PriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price [item name]",
		Short: "Resolve the price of an item",
		Long: `Price resolves an item name through the static catalog first and the
local price cache second. Catalog prices win when a name exists in both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := wire.CommandContext()
			defer cancel()
			name := args[0]

			store := wire.PriceService()
			store.Open(ctx)
			if err := store.AwaitReady(ctx); err != nil {
				return fmt.Errorf("price cache unavailable: %w", err)
			}

			resolved, err := wire.ResolverService().Resolve(ctx, name)
			if errors.Is(err, app.ErrItemNotFound) {
				return fmt.Errorf("no price known for %q", name)
			}
			if err != nil {
				return fmt.Errorf("failed to resolve %q: %w", name, err)
			}

			fmt.Printf("%s: %d coins (%s)\n", resolved.Name, resolved.MinimumPrice, resolved.Source)
			return nil
		},
	}
}
