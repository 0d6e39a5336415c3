package seeder

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/Lumos-Labs-HQ/seedgen/internal/schema"
	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
)

// TestMySQLRoundTrip loads the default-dialect scripts into a real MySQL
// server. Set SEEDGEN_MYSQL_DSN, e.g. "testuser:testpass@tcp(localhost:3306)/testdb".
func TestMySQLRoundTrip(t *testing.T) {
	dsn := os.Getenv("SEEDGEN_MYSQL_DSN")
	if dsn == "" {
		t.Skip("SEEDGEN_MYSQL_DSN not set")
	}

	mysqlCfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to parse DSN: %v", err)
	}
	mysqlCfg.MultiStatements = true

	db, err := sql.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}

	cfg := testConfig(t, 2000, 20)
	results, err := NewSeeder(cfg).Seed(ctx)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	for _, table := range []schema.Table{schema.Animals, schema.Plants} {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table.Name); err != nil {
			t.Fatalf("Failed to drop %s: %v", table.Name, err)
		}
		t.Cleanup(func() { db.Exec("DROP TABLE IF EXISTS " + table.Name) })
	}

	for _, result := range results {
		loadScript(t, db, result.Path)
	}

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question).RunWith(db)
	for _, table := range []schema.Table{schema.Animals, schema.Plants} {
		if got := countRows(t, qb, table.Name, nil); got != 2003 {
			t.Errorf("Expected 2003 rows in %s, got %d", table.Name, got)
		}
		if got := countRows(t, qb, table.Name, squirrel.Eq{"elevation": 1}); got < 1000 {
			t.Errorf("Expected at least 1000 rows at elevation 1 in %s, got %d", table.Name, got)
		}
	}
}
