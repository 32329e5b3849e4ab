package main

import (
	"github.com/spf13/cobra"

	"github.com/openpress/depositor/internal/registry"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List recorded deposit batches",
	Args:  cobra.NoArgs,
	RunE:  runBatches,
}

var batchesRegistry string

func init() {
	batchesCmd.Flags().StringVar(&batchesRegistry, "registry", "deposits.db", "Batch registry database path")
	rootCmd.AddCommand(batchesCmd)
}

func runBatches(cmd *cobra.Command, args []string) error {
	reg, err := registry.Open(batchesRegistry)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer reg.Close()

	batches, err := reg.List()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		for _, b := range batches {
			outputHuman("%s  %s  %d articles  %s\n",
				b.CreatedAt.Format("2006-01-02 15:04"), b.BatchID, b.Articles, b.Filename)
		}
		return nil
	}
	if batches == nil {
		batches = []registry.Batch{}
	}
	return outputJSON(batches)
}
