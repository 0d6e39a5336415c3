package schema

import (
	"fmt"
	"strings"
)

type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

type dialectConfig struct {
	// inlineKeys renders secondary keys inside the create statement as `key (col)`.
	// Dialects without that clause get one `create index` statement per key instead.
	inlineKeys bool
	indexName  func(table, column string) string
}

var dialectConfigs = map[Dialect]dialectConfig{
	MySQL: {
		inlineKeys: true,
	},
	SQLite: {
		inlineKeys: false,
		indexName: func(table, column string) string {
			return table + "_" + column
		},
	},
}

func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported dialect: %s. Supported dialects: [mysql sqlite]", name)
	}
}

func (d Dialect) config() dialectConfig {
	if cfg, ok := dialectConfigs[d]; ok {
		return cfg
	}
	return dialectConfigs[MySQL]
}
