// Package schema holds the two seed tables and renders their SQL text.
package schema

import (
	"fmt"
	"strings"
)

type Column struct {
	Name    string
	Type    string
	Primary bool
	Indexed bool
}

// Columns is shared by every table this tool generates.
var Columns = []Column{
	{Name: "id", Type: "int", Primary: true},
	{Name: "name", Type: "varchar(20)", Indexed: true},
	{Name: "category", Type: "int", Indexed: true},
	{Name: "elevation", Type: "int", Indexed: true},
}

type Row struct {
	ID        int
	Name      string
	Category  int
	Elevation int
}

type Table struct {
	Name string
	// SeedRows are hand-authored rows. Their ids are negative so they never
	// collide with generated ids.
	SeedRows []Row
}

var Animals = Table{
	Name: "animals",
	SeedRows: []Row{
		{ID: -1, Name: "goat", Category: 2, Elevation: 4},
		{ID: -2, Name: "cow", Category: 1, Elevation: 3},
		{ID: -3, Name: "chicken", Category: 0, Elevation: 1},
	},
}

var Plants = Table{
	Name: "plants",
	SeedRows: []Row{
		{ID: -1, Name: "sunflower", Category: 3, Elevation: 1},
		{ID: -2, Name: "carnation", Category: 0, Elevation: 1},
		{ID: -3, Name: "wildflower", Category: 4, Elevation: 3},
	},
}

var tables = map[string]Table{
	Animals.Name: Animals,
	Plants.Name:  Plants,
}

func Lookup(name string) (Table, error) {
	table, ok := tables[strings.ToLower(name)]
	if !ok {
		return Table{}, fmt.Errorf("unknown table: %s. Supported tables: [%s %s]", name, Animals.Name, Plants.Name)
	}
	return table, nil
}

// CreateTableSQL renders the create statement, terminated and newline-ended.
func (t Table) CreateTableSQL(d Dialect) string {
	cfg := d.config()

	var defs []string
	var indexed []string
	for _, col := range Columns {
		def := col.Name + " " + col.Type
		if col.Primary {
			def += " primary key"
		}
		defs = append(defs, def)
		if col.Indexed {
			indexed = append(indexed, col.Name)
		}
	}

	if cfg.inlineKeys {
		for _, col := range indexed {
			defs = append(defs, fmt.Sprintf("key (%s)", col))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "create table %s (%s);\n", t.Name, strings.Join(defs, ", "))

	if !cfg.inlineKeys {
		for _, col := range indexed {
			fmt.Fprintf(&sb, "create index %s on %s (%s);\n", cfg.indexName(t.Name, col), t.Name, col)
		}
	}

	return sb.String()
}

// InsertHeader opens a multi-row insert statement; rows follow on their own lines.
func (t Table) InsertHeader() string {
	return "insert into " + t.Name + " values\n"
}

// SQL renders the row as an indented values tuple without a separator.
func (r Row) SQL() string {
	return fmt.Sprintf("  (%d,%s,%d,%d)", r.ID, quote(r.Name), r.Category, r.Elevation)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
