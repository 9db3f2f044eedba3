// Package extract handles single-file fact extraction.
package extract

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-caf/bootleg-expensify-sub000/cmd/root"
	"github.com/g-caf/bootleg-expensify-sub000/internal/engine"
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract vendor, amount, and date from a single receipt file",
	Long: `Extract runs the full pipeline on one file: duplicate check, receipt
classification, then vendor, amount, and date resolution.

Example:
  receipt-extract extract -i receipt.txt`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("Input file must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	fr, err := appContainer.GetBatchProcessor().ProcessFile(input)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to process file: %v", err))
	}

	switch {
	case fr.Result.Duplicate:
		fmt.Println("duplicate document, skipped")
	case !fr.Result.Classification.IsReceipt:
		fmt.Println("not a receipt")
	default:
		fmt.Println(engine.Describe(fr.Result.Extraction))
	}
}
