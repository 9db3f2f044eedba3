// Package classify handles the receipt/non-receipt decision for one file.
package classify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-caf/bootleg-expensify-sub000/cmd/root"
)

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a file as receipt or non-receipt",
	Long: `Classify runs only the classification stage and prints the verdict with
the score and the pattern indicators that produced it.

Example:
  receipt-extract classify -i email.html`,
	Run: classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) {
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

	cls := fr.Result.Classification
	if !cls.IsReceipt {
		fmt.Printf("not a receipt (%s)\n", cls.MatchType)
		return
	}

	vendor := cls.Vendor
	if vendor == "" {
		vendor = "(generic)"
	}
	fmt.Printf("receipt: %s score=%d confidence=%d match=%s\n", vendor, cls.Score, cls.Confidence, cls.MatchType)
	for _, indicator := range cls.Indicators {
		fmt.Printf("  %s\n", indicator)
	}
}
