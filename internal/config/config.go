package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/seedgen/internal/schema"
	"github.com/spf13/viper"
)

const (
	DefaultRowCount     = 200000
	DefaultBatchDivisor = 20
	DefaultOutputDir    = "."
	DefaultDialect      = "mysql"

	// MinRowCount keeps the elevation modulus (row_count/1000) above zero.
	MinRowCount = 1000
)

type Config struct {
	RowCount        int      `json:"row_count" mapstructure:"row_count"`
	BatchDivisor    int      `json:"batch_divisor" mapstructure:"batch_divisor"`
	OutputDir       string   `json:"output_dir" mapstructure:"output_dir"`
	Dialect         string   `json:"dialect" mapstructure:"dialect"`
	LegacyPlantsLag bool     `json:"legacy_plants_lag" mapstructure:"legacy_plants_lag"`
	Tables          []string `json:"tables" mapstructure:"tables"`
}

func DefaultConfig() *Config {
	return &Config{
		RowCount:     DefaultRowCount,
		BatchDivisor: DefaultBatchDivisor,
		OutputDir:    DefaultOutputDir,
		Dialect:      DefaultDialect,
		Tables:       defaultTables(),
	}
}

func defaultTables() []string {
	return []string{schema.Animals.Name, schema.Plants.Name}
}

// SetDefaults registers the defaults with viper. Unchanged flags rank below
// them, so an explicit zero still reaches Validate.
func SetDefaults() {
	viper.SetDefault("row_count", DefaultRowCount)
	viper.SetDefault("batch_divisor", DefaultBatchDivisor)
	viper.SetDefault("output_dir", DefaultOutputDir)
	viper.SetDefault("dialect", DefaultDialect)
	viper.SetDefault("legacy_plants_lag", false)
	viper.SetDefault("tables", defaultTables())
}

func Load() (*Config, error) {
	var cfg Config

	SetDefaults()
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.RowCount < MinRowCount {
		return fmt.Errorf("row_count must be at least %d, got %d", MinRowCount, c.RowCount)
	}

	if c.BatchDivisor < 1 || c.BatchDivisor > c.RowCount {
		return fmt.Errorf("batch_divisor must be between 1 and row_count (%d), got %d", c.RowCount, c.BatchDivisor)
	}

	if _, err := schema.ParseDialect(c.Dialect); err != nil {
		return err
	}

	if len(c.Tables) == 0 {
		return fmt.Errorf("tables cannot be empty")
	}
	for _, table := range c.Tables {
		if _, err := schema.Lookup(table); err != nil {
			return err
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	return nil
}

// BatchSize is the number of generated rows per insert statement.
func (c *Config) BatchSize() int {
	return c.RowCount / c.BatchDivisor
}

func (c *Config) OutputPath(table string) string {
	return filepath.Join(c.OutputDir, table+".sql")
}

func (c *Config) EnsureOutputDir() error {
	if c.OutputDir == "" || c.OutputDir == "." {
		return nil
	}
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputDir, err)
	}
	return nil
}
