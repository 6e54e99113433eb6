package dialects

import (
	"strings"

	"github.com/elsql-go/elsql"
)

// PostgreSQL renders LIKE as ILIKE (case-insensitive by default on
// this engine) and paginates with LIMIT/OFFSET rather than the ANSI
// OFFSET/FETCH form.
type PostgreSQL struct {
	elsql.DefaultConfig
}

func (PostgreSQL) Name() string { return "postgresql" }

func (PostgreSQL) FormatLike(bodySQL string) string {
	return "ILIKE " + strings.TrimSpace(bodySQL)
}

func (PostgreSQL) OffsetFetch(offset, fetch int) string {
	return elsql.FormatLimitOffset(offset, fetch)
}

func (PostgreSQL) Paging(offset, fetch int, bodySQL string) string {
	suffix := elsql.FormatLimitOffset(offset, fetch)
	body := strings.TrimSpace(bodySQL)
	if suffix == "" {
		return body
	}
	return body + " " + suffix
}
