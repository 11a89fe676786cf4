package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tradepost/internal/core/snapshot"
	"github.com/example/tradepost/internal/wire"
)

// IngestCmd returns the ingest command
func IngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [snapshot.json]",
		Short: "Ingest a market snapshot batch into the price cache",
		Long: `Ingest reads one snapshot batch (a JSON array of market entries) and
writes it into the local price cache. Entries with tier > 1 are skipped.
Batches submitted while the cache is still opening are buffered and applied
in submission order once it is ready.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := wire.CommandContext()
			defer cancel()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open snapshot file: %w", err)
			}
			defer file.Close()

			batch, err := snapshot.DecodeBatch(file)
			if err != nil {
				return err
			}

			store := wire.PriceService()
			store.Open(ctx)

			result, err := store.Submit(ctx, batch)
			if err != nil {
				return fmt.Errorf("failed to ingest batch: %w", err)
			}

			if result.Queued {
				// Buffered: wait for the ready drain to apply it.
				if err := store.AwaitReady(ctx); err != nil {
					return fmt.Errorf("failed to ingest batch: %w", err)
				}
				fmt.Printf("%s Ingested %d entries (applied after store open)\n",
					color.GreenString("✓"), len(batch))
				return nil
			}

			fmt.Printf("%s Ingested batch: %d written, %d skipped (tier > 1)\n",
				color.GreenString("✓"), result.Written, result.Skipped)
			return nil
		},
	}
}
