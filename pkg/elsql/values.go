package elsql

import (
	"fmt"
	"strconv"
	"strings"
)

// effectiveName applies the loop-index decoration policy: inside a
// loop (loopIndex >= 0), prefer "name<loopIndex>" when it is bound,
// otherwise fall back to the bare name. Outside a loop, the bare name
// is always used.
func effectiveName(name string, loopIndex int, params ParamSource) string {
	if loopIndex < 0 {
		return name
	}
	candidate := name + strconv.Itoa(loopIndex)
	if params.HasValue(candidate) {
		return candidate
	}
	return name
}

// toStringValue renders a ParamSource value as the text an SQL
// fragment should contain, mirroring the source language's implicit
// toString() used by @VALUE and inline `:name` substitution.
func toStringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// toInt coerces a ParamSource value to an int for @LOOP counts and
// @OFFSETFETCH/@PAGING variables. Accepts the numeric kinds a
// parameter map is realistically populated with, plus numeric strings.
func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case float32:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// evalPredicate implements the shared @IF/@AND/@OR predicate
// semantics: absent → false; a match literal → case-insensitive
// string equality; a bare boolean value → itself; any other present
// value → true.
func evalPredicate(variable, matchValue string, hasMatch bool, loopIndex int, params ParamSource) bool {
	name := effectiveName(variable, loopIndex, params)
	if !params.HasValue(name) {
		return false
	}
	val := params.GetValue(name)
	if hasMatch {
		return strings.EqualFold(toStringValue(val), matchValue)
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return true
}

// resolveIntVar looks up name (loop-index decorated) as an integer,
// returning def when unbound — used by @OFFSETFETCH/@PAGING, which
// treat a missing offset as 0 and a missing fetch as unlimited rather
// than failing.
func resolveIntVar(name string, loopIndex int, params ParamSource, def int) (int, error) {
	eff := effectiveName(name, loopIndex, params)
	if !params.HasValue(eff) {
		return def, nil
	}
	n, ok := toInt(params.GetValue(eff))
	if !ok {
		return 0, &TypeError{Variable: name, Want: "integer"}
	}
	return n, nil
}
