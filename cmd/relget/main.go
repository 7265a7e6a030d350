package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	// This seems to provide no value whatsoever for a console tool. All it
	// does, is take time.
	cobra.MousetrapHelpText = ""

	root := rootCmd()
	root.AddCommand(listCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
