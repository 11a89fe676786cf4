package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tradepost/internal/cli"
	"github.com/example/tradepost/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tradepost",
		Short:   "tradepost - local market price cache and crafting profit engine",
		Version: version.String(),
		Long: `tradepost caches observed marketplace prices in a local database and
uses the cache to compute expected profit per hour for crafting recipes.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.IngestCmd())
	rootCmd.AddCommand(cli.PriceCmd())
	rootCmd.AddCommand(cli.ProfitCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
