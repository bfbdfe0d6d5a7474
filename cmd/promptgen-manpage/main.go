package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/promptgen/cmd/promptgen"
	"github.com/arthur-debert/promptgen/internal/version"
)

func main() {
	rootCmd := promptgen.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PROMPTGEN",
		Section: "1",
		Source:  "promptgen " + version.Version,
		Manual:  "promptgen manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
