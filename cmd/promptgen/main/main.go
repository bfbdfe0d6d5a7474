package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/promptgen/cmd/promptgen"
	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/ui/styles"
)

func main() {
	rootCmd := promptgen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !promptgen.IsRendered(err) {
			// Print the error in red
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

			// Usage mistakes come back from cobra as plain errors
			if errors.GetErrorCode(err) == errors.ErrUnknown {
				fmt.Fprintln(os.Stderr)
				fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", rootCmd.CommandPath())
			}
		}

		os.Exit(1)
	}
}
