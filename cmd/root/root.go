// Package root contains the root command for the application
package root

import (
	"github.com/ionicblue/ofxstatement-paypal/internal/config"
	"github.com/ionicblue/ofxstatement-paypal/internal/fileutils"
	"github.com/ionicblue/ofxstatement-paypal/internal/ofx"
	"github.com/ionicblue/ofxstatement-paypal/internal/paypalparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Settings holds the loaded application settings
	Settings *config.Settings

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ofxstatement-paypal",
		Short: "A CLI tool to convert PayPal CSV exports to OFX statements.",
		Long: `ofxstatement-paypal converts PayPal CSV transaction exports into
OFX statement files, with currency filtering and optional merging of
cross-currency conversion rows with the transactions they settled.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ofxstatement-paypal!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			paypalparser.SetLogger(Log)
			fileutils.SetLogger(Log)
			ofx.SetLogger(Log)

			settings, err := config.InitializeSettings()
			if err != nil {
				Log.Fatalf("Failed to load settings: %v", err)
			}
			Settings = settings
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
