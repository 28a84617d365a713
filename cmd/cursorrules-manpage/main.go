package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cursorrules/cmd/cursorrules"
	"github.com/arthur-debert/cursorrules/internal/version"
)

func main() {
	rootCmd := cursorrules.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CURSORRULES",
		Section: "1",
		Source:  "cursorrules " + version.Version,
		Manual:  "cursorrules manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
