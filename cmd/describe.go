package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/seedgen/internal/seeder"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type description struct {
	Tables []seeder.Plan `yaml:"tables"`
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the generation plan as YAML without writing files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		plans, err := seeder.NewSeeder(cfg).Plans()
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(description{Tables: plans}); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
