// Package cmd implements the elsql CLI's cobra command tree. It is a
// thin shell over pkg/elsql: every command loads a Bundle (or parses a
// resource directly) and calls into the library, keeping flag wiring
// and business logic cleanly separated.
package cmd

import (
	"github.com/elsql-go/elsql"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	debugLogging bool
	logger       zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "elsql",
	Short: "Render and validate ElSql parameterised SQL statements",
	Long: `elsql is a library and CLI for ElSql, an indentation-driven template
language for composing dialect-aware parameterised SQL statements.

It provides both programmatic access as a Go library (pkg/elsql) and
command-line tooling for rendering, validating, and inspecting .elsql
resource files.`,
	Version:           version,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("elsql version v" + version + "\n")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	logger = elsql.NewCLILogger(debugLogging)
	return nil
}

// Execute runs the root command; main.go's only job is to call this
// and translate a returned error into a process exit code.
func Execute() error {
	return rootCmd.Execute()
}
