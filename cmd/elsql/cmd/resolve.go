package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/elsql-go/elsql"
	"github.com/elsql-go/elsql/pkg/elsql/dialects"
)

// resolveDialect picks the dialect config for a resource: an explicit
// --dialect flag wins; otherwise the resource's own leading "--
// elsql: dialect=NAME" comment; otherwise the CLI config file's
// default dialect; otherwise the built-in default dialect.
func resolveDialect(explicit string, resourcePath string) elsql.Config {
	content := ""
	if data, err := os.ReadFile(resourcePath); err == nil {
		content = string(data)
	}
	return resolveDialectFromContent(explicit, content)
}

// resolveDialectFromContent is resolveDialect's core: an explicit
// --dialect flag wins, then the resource's own leading "-- elsql:
// dialect=NAME" comment, then the CLI config file's default dialect,
// then the built-in default.
func resolveDialectFromContent(explicit string, content string) elsql.Config {
	if explicit != "" {
		return dialects.ForName(explicit)
	}

	if name, ok := elsql.ParseInlineDialectHint(content); ok {
		return dialects.ForName(name)
	}

	cf, err := elsql.LoadCLIConfigFile()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load CLI config file")
	} else if cf.Dialect != "" {
		return dialects.ForName(cf.Dialect)
	}

	return dialects.ForName("")
}

// resourcePath joins dir and resourceName into the OS path of the
// "<resourceName>.elsql" base resource that Bundle.Of reads from
// os.DirFS(dir).
func resourcePath(dir, resourceName string) string {
	return filepath.Join(dir, resourceName+".elsql")
}

// parseParamFlags turns a list of "name=value" strings (as given to
// --param, repeatable) into a MapParams, inferring int and bool values
// so numeric variables like @LOOP counts and @OFFSETFETCH bounds don't
// require quoting on the command line.
func parseParamFlags(raw []string) (*elsql.MapParams, error) {
	params := elsql.NewParams()
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --param %q: expected name=value", kv)
		}
		params.With(name, inferParamValue(value))
	}
	return params, nil
}

func inferParamValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
