package main

import (
	"fmt"
	"os"

	"github.com/elsql-go/elsql/cmd/elsql/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
