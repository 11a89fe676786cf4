package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tradepost/internal/ports/primary"
	"github.com/example/tradepost/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show price cache status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := wire.CommandContext()
			defer cancel()

			store := wire.PriceService()
			store.Open(ctx)
			openErr := store.AwaitReady(ctx)

			stats, err := store.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to read store stats: %w", err)
			}

			switch stats.State {
			case primary.StateReady:
				fmt.Printf("State:          %s\n", color.GreenString(string(stats.State)))
				fmt.Printf("Records:        %d\n", stats.Records)
				fmt.Printf("Schema version: %d\n", stats.SchemaVersion)
			case primary.StateFailed:
				fmt.Printf("State: %s\n", color.RedString(string(stats.State)))
				if openErr != nil {
					fmt.Printf("Error: %v\n", openErr)
				}
			default:
				fmt.Printf("State: %s\n", stats.State)
			}
			return nil
		},
	}
}
