package dialects

import (
	"strings"

	"github.com/elsql-go/elsql"
)

// SQLite shares MySQL/PostgreSQL's LIMIT/OFFSET pagination form; its
// LIKE is case-insensitive for ASCII by default, so the body is left
// unchanged like the default dialect.
type SQLite struct {
	elsql.DefaultConfig
}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) OffsetFetch(offset, fetch int) string {
	return elsql.FormatLimitOffset(offset, fetch)
}

func (SQLite) Paging(offset, fetch int, bodySQL string) string {
	suffix := elsql.FormatLimitOffset(offset, fetch)
	body := strings.TrimSpace(bodySQL)
	if suffix == "" {
		return body
	}
	return body + " " + suffix
}
