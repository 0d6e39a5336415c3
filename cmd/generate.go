package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/seedgen/internal/config"
	"github.com/Lumos-Labs-HQ/seedgen/internal/seeder"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write animals.sql and plants.sql",
	Long: `Write one seed script per table. Existing files are overwritten.

Each script holds the create table statement, one insert with the three
hand-authored rows, and the generated rows split into --batches insert
statements.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := seeder.NewSeeder(cfg)
	if _, err := s.Seed(cmd.Context()); err != nil {
		return err
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
