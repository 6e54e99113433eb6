package cmd

import (
	"fmt"

	"github.com/elsql-go/elsql/pkg/elsql/dialects"
	"github.com/spf13/cobra"
)

var dialectsCmd = &cobra.Command{
	Use:     "dialects",
	Aliases: []string{"list-dialects"},
	Short:   "List all supported SQL dialects",
	Long: `List every built-in dialect accepted by --dialect and by the
"<resource>-<dialect>.elsql" overlay filename convention.`,
	Run: runDialects,
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}

var dialectDescriptions = map[string]string{
	"default":    "ANSI OFFSET/FETCH pagination, unmodified LIKE bodies",
	"postgresql": "ILIKE, LIMIT/OFFSET pagination (aliases: postgres)",
	"mysql":      "LIMIT/OFFSET pagination (aliases: mariadb)",
	"sqlite":     "LIMIT/OFFSET pagination",
	"sqlserver":  "ANSI OFFSET/FETCH pagination (aliases: mssql)",
	"oracle":     "ANSI OFFSET/FETCH pagination (aliases: plsql)",
}

func runDialects(cmd *cobra.Command, args []string) {
	fmt.Println("Supported dialects:")
	fmt.Println()
	for _, name := range dialects.Names() {
		fmt.Printf("  %s\n", name)
		if desc, ok := dialectDescriptions[name]; ok {
			fmt.Printf("    %s\n", desc)
		}
	}
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  elsql render --dialect=postgresql orders SelectActive")
}
