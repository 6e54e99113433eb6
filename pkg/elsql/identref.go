package elsql

import "regexp"

// mustIdentRefRegexp builds the pattern matching a bare `:name`
// variable reference inside literal SQL text. Left unsubstituted when
// unbound, since it may be a bind-parameter placeholder meant for the
// caller's own SQL driver rather than an ElSql variable.
func mustIdentRefRegexp() *regexp.Regexp {
	return regexp.MustCompile(`:[A-Za-z_][A-Za-z0-9_]*`)
}
