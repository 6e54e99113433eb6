package dialects

import (
	"strings"

	"github.com/elsql-go/elsql"
)

// MySQL paginates with LIMIT/OFFSET and leaves LIKE unchanged (MySQL's
// LIKE is already case-insensitive under the default collation).
type MySQL struct {
	elsql.DefaultConfig
}

func (MySQL) Name() string { return "mysql" }

func (MySQL) OffsetFetch(offset, fetch int) string {
	return elsql.FormatLimitOffset(offset, fetch)
}

func (MySQL) Paging(offset, fetch int, bodySQL string) string {
	suffix := elsql.FormatLimitOffset(offset, fetch)
	body := strings.TrimSpace(bodySQL)
	if suffix == "" {
		return body
	}
	return body + " " + suffix
}
