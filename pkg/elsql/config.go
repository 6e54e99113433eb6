package elsql

import (
	"math"
	"strconv"
	"strings"
)

// NoFetchLimit is the sentinel fetch value meaning "no limit".
// OffsetFetch and Paging implementations treat this value as "omit the
// fetch/limit clause".
const NoFetchLimit = math.MaxInt32

// Config is the dialect policy contract the parser and renderer depend
// on. The renderer never inspects an implementation beyond these five
// methods.
type Config interface {
	// Name identifies the dialect, used only to select an overlay
	// resource filename (<simple-name>-<Name()>.elsql) when loading a
	// bundle via Of.
	Name() string

	// FormatLike returns the final LIKE-clause text for the already
	// rendered body of an @LIKE ... @ENDLIKE block.
	FormatLike(bodySQL string) string

	// OffsetFetch returns the pagination suffix for the given offset
	// and fetch. offset == 0 must omit the offset clause; fetch ==
	// NoFetchLimit must omit the fetch clause.
	OffsetFetch(offset, fetch int) string

	// Paging returns bodySQL rewritten to apply pagination. Some
	// dialects wrap the entire query rather than appending a suffix.
	Paging(offset, fetch int, bodySQL string) string

	// FormatLine is applied by the parser to every raw SQL text line
	// before it becomes a Text fragment.
	FormatLine(raw string) string
}

// DefaultConfig is the baseline dialect: ANSI-style OFFSET/FETCH
// pagination and an unmodified LIKE body. Concrete dialects in
// pkg/elsql/dialects embed DefaultConfig and override only what
// differs.
type DefaultConfig struct{}

func (DefaultConfig) Name() string { return "default" }

func (DefaultConfig) FormatLike(bodySQL string) string {
	return "LIKE " + strings.TrimSpace(bodySQL)
}

func (DefaultConfig) OffsetFetch(offset, fetch int) string {
	return FormatOffsetFetch(offset, fetch)
}

func (DefaultConfig) Paging(offset, fetch int, bodySQL string) string {
	suffix := FormatOffsetFetch(offset, fetch)
	if suffix == "" {
		return strings.TrimSpace(bodySQL)
	}
	return strings.TrimSpace(bodySQL) + " " + suffix
}

func (DefaultConfig) FormatLine(raw string) string {
	return strings.TrimRight(raw, " \t\r")
}

// FormatOffsetFetch renders the ANSI/SQL:2008 "OFFSET n ROWS FETCH NEXT
// m ROWS ONLY" form shared by several dialects (standard SQL, SQL
// Server 2012+, Oracle 12c+). offset == 0 omits the OFFSET clause;
// fetch == NoFetchLimit omits the FETCH clause. Exported so dialect
// implementations that want this exact suffix don't duplicate it.
func FormatOffsetFetch(offset, fetch int) string {
	var b strings.Builder
	if offset > 0 {
		b.WriteString("OFFSET ")
		b.WriteString(strconv.Itoa(offset))
		b.WriteString(" ROWS ")
	}
	if fetch != NoFetchLimit {
		b.WriteString("FETCH NEXT ")
		b.WriteString(strconv.Itoa(fetch))
		b.WriteString(" ROWS ONLY")
	}
	return strings.TrimSpace(b.String())
}

// FormatLimitOffset renders the "LIMIT m OFFSET n" form shared by
// MySQL/PostgreSQL/SQLite. fetch == NoFetchLimit omits LIMIT; offset ==
// 0 omits OFFSET. If both are omitted the result is empty.
func FormatLimitOffset(offset, fetch int) string {
	var b strings.Builder
	if fetch != NoFetchLimit {
		b.WriteString("LIMIT ")
		b.WriteString(strconv.Itoa(fetch))
	}
	if offset > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("OFFSET ")
		b.WriteString(strconv.Itoa(offset))
	}
	return b.String()
}
