package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tradepost/internal/config"
	"github.com/example/tradepost/internal/db"
	"github.com/example/tradepost/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the price cache",
		Long:  `Initialize the price database and write a default config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed")

			cfg := wire.Config()
			path, err := cfg.DBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing price cache at %s\n", path)

			database, err := db.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			if err := db.InitSchema(database); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Printf("%s Database initialized\n", color.GreenString("✓"))

			if seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Printf("%s Development fixtures seeded\n", color.GreenString("✓"))
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			if _, err := config.Load(cwd); err != nil {
				if err := config.Save(cwd, cfg); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Printf("%s Config written to .tradepost/config.json\n", color.GreenString("✓"))
			}

			return nil
		},
	}
	cmd.Flags().Bool("seed", false, "seed development fixtures")
	return cmd
}
