// Package catalog handles exporting the pattern catalog for customization.
package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-caf/bootleg-expensify-sub000/cmd/root"
	"github.com/g-caf/bootleg-expensify-sub000/internal/catalog"
)

// Cmd represents the catalog command.
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Export the built-in pattern catalog to a YAML file",
	Long: `Catalog writes the built-in vendor profiles, negative patterns, store
names, and domain tables to a YAML file, as a starting point for a
customized catalog.

Example:
  receipt-extract catalog -o catalog.yaml`,
	Run: catalogFunc,
}

func catalogFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	output := root.SharedFlags.Output
	if output == "" {
		logger.Fatal("Output file must be specified")
	}

	store := catalog.NewStore(output, logger)
	if err := store.Save(catalog.DefaultFileConfig()); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to export catalog: %v", err))
	}

	root.Log.Info(fmt.Sprintf("Exported built-in catalog to %s", output))
}
