package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkshelf",
	Short: "Resource directory page server",
	Long: `linkshelf serves a single-page resource directory built from a JSON or
YAML content file: categories of resource cards, quick links, statistics
and a light/dark theme remembered per visitor.

Without a subcommand it runs the HTTP server. Configuration comes from
LINKSHELF_* environment variables.`,
	SilenceUsage: true,
	RunE:         runServe,
}
