package cmd

import (
	"fmt"
	"os"

	"github.com/elsql-go/elsql"
	"github.com/spf13/cobra"
)

var (
	renderDir     string
	renderDialect string
	renderParams  []string
)

var renderCmd = &cobra.Command{
	Use:   "render <resource> <fragment>",
	Short: "Render a named SQL fragment from an .elsql resource",
	Long: `Render looks up <resource>.elsql (plus its dialect overlay, if one
exists) in --dir, then renders the fragment named <fragment> using the
bound --param values.

Examples:
  elsql render orders SelectByStatus --param status=shipped
  elsql render --dialect=postgresql --dir=./sql orders AllActive
  elsql render orders InClause --param n=3 --param var0=a --param var1=b --param var2=c`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderDir, "dir", ".", "Directory containing .elsql resources")
	renderCmd.Flags().StringVar(&renderDialect, "dialect", "", "Dialect name (default: auto-detected)")
	renderCmd.Flags().StringArrayVar(&renderParams, "param", nil, "Bind a variable as name=value (repeatable)")
}

func runRender(cmd *cobra.Command, args []string) error {
	resourceName, fragmentName := args[0], args[1]

	cfg := resolveDialect(renderDialect, resourcePath(renderDir, resourceName))
	logger.Debug().Str("resource", resourceName).Str("dialect", cfg.Name()).Msg("resolved dialect")

	bundle, err := elsql.Of(os.DirFS(renderDir), cfg, resourceName)
	if err != nil {
		return fmt.Errorf("loading %s: %w", resourceName, err)
	}

	params, err := parseParamFlags(renderParams)
	if err != nil {
		return err
	}

	sql, err := bundle.GetSQL(fragmentName, params)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", fragmentName, err)
	}

	fmt.Println(sql)
	return nil
}
