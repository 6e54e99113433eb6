package elsql

import (
	"errors"
	"fmt"
	"strings"
)

// sprintf is a thin fmt.Sprintf alias kept local so parser.go doesn't
// need to import "fmt" directly alongside its own small string helpers.
func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// splitDirectiveArgs separates a directive's trailing text (everything
// after "@WORD") into an optional parenthesised argument list and any
// text following the closing paren (used only by @LOOPJOIN, whose
// argument is bare trailing text rather than a parenthesised one).
// A '(' with no matching ')' is an unbalanced-parentheses parse error.
func splitDirectiveArgs(rest string) (args string, hasArgs bool, trailing string, err error) {
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "(") {
		return "", false, strings.TrimSpace(rest), nil
	}
	close := strings.IndexByte(rest, ')')
	if close < 0 {
		return "", false, "", errors.New("unbalanced parentheses in directive")
	}
	return rest[1:close], true, strings.TrimSpace(rest[close+1:]), nil
}

// parseSingleVar parses a bare ":name" directive argument, stripping
// the leading colon; variable names are stored internally without it.
func parseSingleVar(args string) (string, error) {
	args = strings.TrimSpace(args)
	if !strings.HasPrefix(args, ":") {
		return "", errors.New("expected a variable reference starting with ':'")
	}
	name := strings.TrimSpace(args[1:])
	if name == "" || !isIdentifier(name) {
		return "", errors.New("malformed variable name")
	}
	return name, nil
}

// parsePredicateArgs parses the common `:var` / `:var = literal` shape
// shared by @AND, @OR and @IF.
func parsePredicateArgs(args string) (variable, matchValue string, hasMatch bool, err error) {
	args = strings.TrimSpace(args)
	eq := strings.IndexByte(args, '=')
	if eq < 0 {
		variable, err = parseSingleVar(args)
		return variable, "", false, err
	}
	variable, err = parseSingleVar(args[:eq])
	if err != nil {
		return "", "", false, err
	}
	matchValue = strings.TrimSpace(args[eq+1:])
	matchValue = strings.Trim(matchValue, `'"`)
	return variable, matchValue, true, nil
}

// parseTwoVars parses the "[:a,:b]" pair used by @OFFSETFETCH and
// @PAGING when given explicit variable names.
func parseTwoVars(args string) (a, b string, err error) {
	parts := strings.SplitN(args, ",", 2)
	if len(parts) != 2 {
		return "", "", errors.New("expected two comma-separated variable references")
	}
	a, err = parseSingleVar(parts[0])
	if err != nil {
		return "", "", err
	}
	b, err = parseSingleVar(parts[1])
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

// isIdentifier reports whether s is a valid bare identifier: letters,
// digits, and underscores, not starting with a digit.
func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
		isDigit := c >= '0' && c <= '9'
		if i == 0 && !isAlpha {
			return false
		}
		if !isAlpha && !isDigit {
			return false
		}
	}
	return true
}
