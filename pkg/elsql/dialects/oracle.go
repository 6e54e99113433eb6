package dialects

import "github.com/elsql-go/elsql"

// Oracle (12c+) also uses the ANSI "OFFSET n ROWS FETCH NEXT m ROWS
// ONLY" form, so only Name is overridden here.
type Oracle struct {
	elsql.DefaultConfig
}

func (Oracle) Name() string { return "oracle" }
