package seeder

import (
	"fmt"
	"strconv"

	"github.com/Lumos-Labs-HQ/seedgen/internal/config"
	"github.com/Lumos-Labs-HQ/seedgen/internal/schema"
)

// Divisors of the row count that give the category and elevation cycles.
const (
	categoryDivisor  = 50
	elevationDivisor = 1000
)

func NewPlan(cfg *config.Config, table schema.Table) (Plan, error) {
	dialect, err := schema.ParseDialect(cfg.Dialect)
	if err != nil {
		return Plan{}, err
	}

	batchSize := cfg.BatchSize()
	if batchSize <= 0 {
		return Plan{}, fmt.Errorf("batch size for %s is %d (row_count %d, batch_divisor %d)",
			table.Name, batchSize, cfg.RowCount, cfg.BatchDivisor)
	}

	plan := Plan{
		Table:            table.Name,
		Dialect:          string(dialect),
		Path:             cfg.OutputPath(table.Name),
		SeedRows:         len(table.SeedRows),
		RowCount:         cfg.RowCount,
		BatchSize:        batchSize,
		BatchCount:       (cfg.RowCount + batchSize - 1) / batchSize,
		CategoryModulus:  cfg.RowCount / categoryDivisor,
		ElevationModulus: cfg.RowCount / elevationDivisor,
		Lag:              cfg.LegacyPlantsLag && table.Name == schema.Plants.Name,
		table:            table,
		dialect:          dialect,
	}

	if plan.CategoryModulus <= 0 || plan.ElevationModulus <= 0 {
		return Plan{}, fmt.Errorf("row_count %d is too small for %s", cfg.RowCount, table.Name)
	}

	return plan, nil
}

// Row derives the generated row with the given id.
//
// With Lag set the values trail the id by one row, and row 0 takes the
// values of the last id. Older plants scripts were produced that way.
func (p Plan) Row(id int) schema.Row {
	source := id
	if p.Lag {
		source = id - 1
		if id == 0 {
			source = p.RowCount - 1
		}
	}

	return schema.Row{
		ID:        id,
		Name:      "name" + strconv.Itoa(id),
		Category:  source % p.CategoryModulus,
		Elevation: source % p.ElevationModulus,
	}
}

// Statements is the number of insert statements the script carries,
// the seed-row statement included.
func (p Plan) Statements() int {
	n := p.BatchCount
	if p.SeedRows > 0 {
		n++
	}
	return n
}
