// Package dialects holds the concrete elsql.Config implementations for
// the SQL dialects this module ships, plus a name-based lookup table
// used by the CLI. Bundle overlay resolution does not use this table;
// it keys off the Name() of whatever Config it is given.
package dialects

import "github.com/elsql-go/elsql"

// ForName returns the built-in Config registered under name, falling
// back to the default dialect for an unrecognized or empty name.
func ForName(name string) elsql.Config {
	switch name {
	case "postgresql", "postgres":
		return PostgreSQL{}
	case "mysql", "mariadb":
		return MySQL{}
	case "sqlite":
		return SQLite{}
	case "sqlserver", "mssql":
		return SQLServer{}
	case "oracle", "plsql":
		return Oracle{}
	default:
		return elsql.DefaultConfig{}
	}
}

// Names lists every built-in dialect name, in the order `elsql
// dialects` should print them.
func Names() []string {
	return []string{"default", "postgresql", "mysql", "sqlite", "sqlserver", "oracle"}
}
