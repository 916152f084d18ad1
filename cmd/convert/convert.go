// Package convert handles PayPal CSV to OFX conversion commands
package convert

import (
	"github.com/ionicblue/ofxstatement-paypal/cmd/common"
	"github.com/ionicblue/ofxstatement-paypal/cmd/root"
	"github.com/ionicblue/ofxstatement-paypal/internal/config"
	"github.com/ionicblue/ofxstatement-paypal/internal/logging"
	"github.com/ionicblue/ofxstatement-paypal/internal/paypalparser"

	"github.com/spf13/cobra"
)

var (
	accountID  string
	currency   string
	locale     string
	encoding   string
	dateFormat string
	mergePayee string
	analyze    string
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PayPal CSV export to an OFX statement",
	Long: `Convert a PayPal CSV transaction export into an OFX statement file.
Rows are filtered to the configured currency; with --merge-payee,
currency-conversion rows adopt the payee and memo of the foreign
transaction they settled.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVar(&accountID, "account-id", "", "Account identifier for the generated statement")
	Cmd.Flags().StringVar(&currency, "currency", "", "Target currency code, e.g. USD")
	Cmd.Flags().StringVar(&locale, "locale", "", "Numeric locale of the Amount column, e.g. fr_FR")
	Cmd.Flags().StringVar(&encoding, "encoding", "", "Charset of the export file (default iso8859-1)")
	Cmd.Flags().StringVar(&dateFormat, "date-format", "", "Date format pattern (default %d/%m/%Y)")
	Cmd.Flags().StringVar(&mergePayee, "merge-payee", "", "Merge conversion rows with their foreign counterpart (true/false)")
	Cmd.Flags().StringVar(&analyze, "analyze", "", "Reserved for future memo enrichment; currently a no-op (true/false)")
}

func convertFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)
	log.Info("PayPal CSV convert command called")
	log.Infof("Input PayPal CSV file: %s", root.SharedFlags.Input)
	log.Infof("Output OFX file: %s", root.SharedFlags.Output)

	cfg, err := buildParserConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	p := paypalparser.NewAdapter(cfg)
	p.SetLogger(root.Log)
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, log)
}

// buildParserConfig merges loaded settings with flag overrides into the
// parser configuration. Flags win over settings.
func buildParserConfig() (paypalparser.Config, error) {
	s := root.Settings.PayPal

	cfg := paypalparser.Config{
		AccountID:  override(accountID, s.AccountID),
		Currency:   override(currency, s.Currency),
		Locale:     override(locale, s.Locale),
		Encoding:   override(encoding, s.Encoding),
		DateFormat: override(dateFormat, s.DateFormat),
	}

	merge, err := config.ParseBool(override(mergePayee, s.MergePayee))
	if err != nil {
		return paypalparser.Config{}, err
	}
	cfg.MergePayee = merge

	analyzeFlag, err := config.ParseBool(override(analyze, s.Analyze))
	if err != nil {
		return paypalparser.Config{}, err
	}
	cfg.Analyze = analyzeFlag

	return cfg, nil
}

func override(flagValue, settingValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return settingValue
}
