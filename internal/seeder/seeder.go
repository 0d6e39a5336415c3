package seeder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Lumos-Labs-HQ/seedgen/internal/config"
	"github.com/Lumos-Labs-HQ/seedgen/internal/schema"
	"github.com/fatih/color"
)

type Seeder struct {
	config *config.Config
}

func NewSeeder(cfg *config.Config) *Seeder {
	return &Seeder{config: cfg}
}

// Plans returns one plan per configured table, in configuration order.
func (s *Seeder) Plans() ([]Plan, error) {
	plans := make([]Plan, 0, len(s.config.Tables))
	for _, name := range s.config.Tables {
		table, err := schema.Lookup(name)
		if err != nil {
			return nil, err
		}
		plan, err := NewPlan(s.config, table)
		if err != nil {
			return nil, fmt.Errorf("failed to plan table %s: %w", name, err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (s *Seeder) Seed(ctx context.Context) ([]Result, error) {
	color.Cyan("🌱 Starting seed data generation...")

	plans, err := s.Plans()
	if err != nil {
		return nil, err
	}

	if err := s.config.EnsureOutputDir(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(plans))
	for _, plan := range plans {
		color.Cyan("  📝 Writing %s (%d rows in %d batches, %d insert statements)...",
			plan.Path, plan.RowCount, plan.BatchCount, plan.Statements())

		result, err := WriteFile(ctx, plan)
		if err != nil {
			return results, fmt.Errorf("failed to generate %s: %w", plan.Table, err)
		}
		results = append(results, result)

		color.Green("  ✅ %s written (%d statements, %d bytes)", result.Path, result.Statements, result.Bytes)
	}

	color.Green("\n✅ Seed data generation completed successfully!")
	return results, nil
}

// WriteFile creates or truncates plan.Path and writes the script into it.
func WriteFile(ctx context.Context, plan Plan) (Result, error) {
	file, err := os.Create(plan.Path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create %s: %w", plan.Path, err)
	}

	result, err := Write(ctx, file, plan)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", plan.Path, closeErr)
	}
	result.Path = plan.Path
	return result, err
}

// Write streams the create statement, the seed rows and the generated rows
// of plan to w. Generated rows are split into insert statements of
// plan.BatchSize rows; every statement ends with ";\n". The context is
// checked between statements.
func Write(ctx context.Context, w io.Writer, plan Plan) (Result, error) {
	counter := &countingWriter{w: w}
	bw := bufio.NewWriter(counter)
	header := plan.table.InsertHeader()

	var result Result

	bw.WriteString(plan.table.CreateTableSQL(plan.dialect))

	if len(plan.table.SeedRows) > 0 {
		bw.WriteString(header)
		for i, row := range plan.table.SeedRows {
			if i > 0 {
				bw.WriteString(",\n")
			}
			bw.WriteString(row.SQL())
		}
		bw.WriteString(";\n")
		result.Statements++
	}

	if plan.RowCount > 0 {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		bw.WriteString(header)
		result.Statements++

		for i := 0; i < plan.RowCount; i++ {
			if i > 0 && i%plan.BatchSize == 0 {
				bw.WriteString(";\n")
				if err := ctx.Err(); err != nil {
					return result, err
				}
				bw.WriteString(header)
				result.Statements++
			} else if i > 0 {
				bw.WriteString(",\n")
			}
			bw.WriteString(plan.Row(i).SQL())
			result.Rows++
		}
		bw.WriteString(";\n")
	}

	// bufio keeps the first write error, so one check covers every write above.
	if err := bw.Flush(); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", plan.Table, err)
	}

	result.Bytes = counter.n
	return result, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
