package dialects

import "github.com/elsql-go/elsql"

// SQLServer (2012+) uses the same ANSI OFFSET/FETCH pagination form as
// the default dialect, so it only overrides Name; kept as a distinct
// type rather than an alias so `elsql dialects` and overlay-resource
// lookup (<name>-sqlserver.elsql) have a concrete name to key off.
type SQLServer struct {
	elsql.DefaultConfig
}

func (SQLServer) Name() string { return "sqlserver" }
