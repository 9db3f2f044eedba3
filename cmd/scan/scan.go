// Package scan handles batch processing of a receipt directory.
package scan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-caf/bootleg-expensify-sub000/cmd/root"
	"github.com/g-caf/bootleg-expensify-sub000/internal/report"
)

// Cmd represents the scan command.
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Process a directory of receipt files and write a CSV report",
	Long: `Scan runs the full pipeline over every .txt and .html file in the input
directory and writes one CSV row per file.

Example:
  receipt-extract scan -i exports/ -o report.csv`,
	Run: scanFunc,
}

func scanFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	inputDir := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if inputDir == "" || output == "" {
		logger.Fatal("Input directory and output file must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	results, err := appContainer.GetBatchProcessor().ProcessDirectory(inputDir)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Error during batch processing: %v", err))
	}

	rows := report.FromResults(results)
	if err := appContainer.GetReportWriter().Write(rows, output); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to write report: %v", err))
	}

	receipts := 0
	for _, row := range rows {
		if row.IsReceipt {
			receipts++
		}
	}
	root.Log.Info(fmt.Sprintf("Scan completed. %d files processed, %d receipts found.", len(rows), receipts))
}
