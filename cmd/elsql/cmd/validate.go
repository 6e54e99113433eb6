package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elsql-go/elsql"
	"github.com/spf13/cobra"
)

var (
	validateDialect string
	validateOutput  string
)

// ValidationResult reports whether a single .elsql resource parsed
// cleanly. ElSql resources don't have a canonical "already formatted"
// form, so this reports parse success rather than a formatting diff.
type ValidationResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check that .elsql resources parse without error",
	Long: `Validate parses each given .elsql file (or every non-ignored
.elsql file under the current directory, when no files are given) and
reports any parse error.

Exit codes:
  0 - every resource parsed cleanly
  1 - one or more resources failed to parse`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateDialect, "dialect", "", "Dialect name (default: auto-detected per file)")
	validateCmd.Flags().StringVar(&validateOutput, "output", "text", "Output format (text or json)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		discovered, err := discoverResources(".")
		if err != nil {
			return err
		}
		files = discovered
	}

	results := make([]ValidationResult, 0, len(files))
	failed := 0
	for _, file := range files {
		result := validateFile(file)
		if !result.Valid {
			failed++
		}
		results = append(results, result)
	}

	if validateOutput == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
	} else {
		for _, result := range results {
			if result.Valid {
				fmt.Printf("%s: ok\n", result.File)
			} else {
				fmt.Printf("%s: %s\n", result.File, result.Error)
			}
		}
		fmt.Printf("\n%d/%d resources valid\n", len(results)-failed, len(results))
	}

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func validateFile(path string) ValidationResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return ValidationResult{File: path, Error: fmt.Sprintf("reading file: %v", err)}
	}

	cfg := resolveDialectFromContent(validateDialect, string(content))

	if _, err := elsql.ParseResource(cfg, 0, string(content)); err != nil {
		ev := logger.Warn().Str("file", path).Err(err)
		if perr, ok := err.(*elsql.ParseError); ok {
			ev = ev.Int("line", perr.Line)
		}
		ev.Msg("resource failed to parse")
		return ValidationResult{File: path, Error: err.Error()}
	}
	return ValidationResult{File: path, Valid: true}
}

func discoverResources(root string) ([]string, error) {
	ignoreFile, err := elsql.LoadIgnoreFile()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load .elsqlignore")
		ignoreFile = &elsql.IgnoreFile{}
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".elsql" {
			return nil
		}
		if ignoreFile.ShouldIgnore(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}
