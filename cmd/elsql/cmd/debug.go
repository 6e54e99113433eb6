package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/elsql-go/elsql"
	"github.com/spf13/cobra"
)

var debugDialect string

var debugCmd = &cobra.Command{
	Use:   "debug <resource> <fragment>",
	Short: "Print the parsed fragment tree of a named fragment",
	Long: `Debug parses <resource>.elsql and dumps the fragment tree rooted at
<fragment> using Go-syntax-like notation, useful for diagnosing why a
@WHERE/@AND/@LOOP nest isn't producing the expected SQL without
reasoning through the rendered text.`,
	Args: cobra.ExactArgs(2),
	RunE: runDebug,
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().StringVar(&debugDialect, "dialect", "", "Dialect name (default: auto-detected)")
}

func runDebug(cmd *cobra.Command, args []string) error {
	resourceName, fragmentName := args[0], args[1]
	path := resourceName + ".elsql"

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := resolveDialectFromContent(debugDialect, string(content))
	names, err := elsql.ParseResource(cfg, 0, string(content))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	frag, ok := names[fragmentName]
	if !ok {
		return fmt.Errorf("no fragment named %q in %s", fragmentName, path)
	}

	repr.Println(frag)
	return nil
}
