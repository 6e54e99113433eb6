package elsql

import "strings"

// ParseInlineDialectHint looks for a leading "-- elsql: dialect=NAME"
// comment at the top of a resource and returns the dialect name it
// names. Used only by the CLI to pick a default dialect when none is
// given explicitly; Bundle/Parse never call this — the core API never
// inspects resource content beyond the documented grammar.
func ParseInlineDialectHint(content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "--") {
			break
		}
		comment := strings.TrimSpace(strings.TrimPrefix(line, "--"))
		if !strings.HasPrefix(comment, "elsql:") {
			continue
		}
		directive := strings.TrimSpace(strings.TrimPrefix(comment, "elsql:"))
		if !strings.HasPrefix(directive, "dialect=") {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(directive, "dialect=")))
		if name != "" {
			return name, true
		}
	}
	return "", false
}
