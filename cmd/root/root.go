// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/g-caf/bootleg-expensify-sub000/internal/config"
	"github.com/g-caf/bootleg-expensify-sub000/internal/container"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}

	appContainer *container.Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "receipt-extract",
		Short: "A CLI tool to classify receipt emails and extract vendor, amount, and date facts.",
		Long: `receipt-extract classifies exported email and document files as purchase
receipts and extracts structured facts from them: the vendor name, the
charged amount, and the transaction date. Batch runs produce a CSV report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to receipt-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			appContainer, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
			}
		},
	}
)

// Init initializes the root command and all shared flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetContainer returns the application container initialized in
// PersistentPreRun. Nil before the root command has run.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogrusAdapter returns the shared logger wrapped in the logging.Logger
// interface for components that take the interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
