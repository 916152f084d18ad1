// Package validate handles PayPal CSV format validation commands
package validate

import (
	"github.com/ionicblue/ofxstatement-paypal/cmd/root"
	"github.com/ionicblue/ofxstatement-paypal/internal/logging"
	"github.com/ionicblue/ofxstatement-paypal/internal/paypalparser"

	"github.com/spf13/cobra"
)

var encoding string

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a file is a PayPal CSV export",
	Long:  `Check whether a file's header matches the PayPal CSV export schema.`,
	Run:   validateFunc,
}

func init() {
	Cmd.Flags().StringVar(&encoding, "encoding", "", "Charset of the export file (default iso8859-1)")
}

func validateFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)
	log.Infof("Validating PayPal CSV file: %s", root.SharedFlags.Input)

	cfg := paypalparser.Config{
		Encoding: encoding,
	}
	if encoding == "" && root.Settings != nil {
		cfg.Encoding = root.Settings.PayPal.Encoding
	}

	valid, err := paypalparser.ValidateFormat(root.SharedFlags.Input, cfg)
	if err != nil {
		log.Fatalf("Error validating file: %v", err)
	}
	if !valid {
		log.Fatal("The file is not a PayPal CSV export")
	}
	log.Info("The file is a valid PayPal CSV export")
}
