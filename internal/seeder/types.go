package seeder

import (
	"github.com/Lumos-Labs-HQ/seedgen/internal/schema"
)

// Plan describes how one table's script is generated.
type Plan struct {
	Table            string `yaml:"table"`
	Dialect          string `yaml:"dialect"`
	Path             string `yaml:"path"`
	SeedRows         int    `yaml:"seed_rows"`
	RowCount         int    `yaml:"row_count"`
	BatchSize        int    `yaml:"batch_size"`
	BatchCount       int    `yaml:"batch_count"`
	CategoryModulus  int    `yaml:"category_modulus"`
	ElevationModulus int    `yaml:"elevation_modulus"`
	Lag              bool   `yaml:"lag,omitempty"`

	table   schema.Table
	dialect schema.Dialect
}

// Result summarizes a written script.
type Result struct {
	Path       string
	Rows       int
	Statements int
	Bytes      int64
}
