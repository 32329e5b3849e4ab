// Package main provides the depositor CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "depositor",
	Short: "Crossref deposit XML generator",
	Long: `depositor converts article metadata into schema-versioned Crossref
deposit XML batches.

Articles are read as JSON, composed into a doi_batch document per the
configured schema version, and written as <batch id>.xml. Generated
batches are recorded in a SQLite registry for auditing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
