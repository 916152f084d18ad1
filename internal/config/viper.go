// Package config: Viper-based hierarchical settings loading.
package config

import (
	"fmt"
	"strings"

	"github.com/ionicblue/ofxstatement-paypal/internal/parsererror"

	"github.com/spf13/viper"
)

// Settings represents the complete application configuration. Boolean
// parser settings are carried as string literals and parsed strictly
// with ParseBool, so a typo in a config file or environment variable
// fails loudly instead of silently meaning false.
type Settings struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	PayPal struct {
		AccountID  string `mapstructure:"account_id" yaml:"account_id"`
		Currency   string `mapstructure:"currency" yaml:"currency"`
		Locale     string `mapstructure:"locale" yaml:"locale"`
		Encoding   string `mapstructure:"encoding" yaml:"encoding"`
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
		Analyze    string `mapstructure:"analyze" yaml:"analyze"`
		MergePayee string `mapstructure:"merge_payee" yaml:"merge_payee"`
	} `mapstructure:"paypal" yaml:"paypal"`
}

// InitializeSettings loads settings with hierarchical precedence:
// defaults, then a config file, then OFX_-prefixed environment
// variables (e.g. OFX_PAYPAL_CURRENCY).
func InitializeSettings() (*Settings, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ofxstatement-paypal")
	v.AddConfigPath(".ofxstatement-paypal")
	v.AddConfigPath(".")

	v.SetEnvPrefix("OFX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := validateSettings(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("paypal.account_id", "")
	v.SetDefault("paypal.currency", "")
	v.SetDefault("paypal.locale", "")
	v.SetDefault("paypal.encoding", "iso8859-1")
	v.SetDefault("paypal.date_format", "%d/%m/%Y")
	v.SetDefault("paypal.analyze", "false")
	v.SetDefault("paypal.merge_payee", "false")
}

// validateSettings rejects settings that would fail later in confusing
// places, in particular malformed boolean literals.
func validateSettings(s *Settings) error {
	if _, err := ParseBool(s.PayPal.Analyze); err != nil {
		return fmt.Errorf("invalid analyze setting: %w", err)
	}
	if _, err := ParseBool(s.PayPal.MergePayee); err != nil {
		return fmt.Errorf("invalid merge_payee setting: %w", err)
	}
	return nil
}

// ParseBool parses the boolean literals accepted in settings:
// "True"/"true"/"1" and "False"/"false"/"0". Anything else is an
// InvalidBooleanLiteralError.
func ParseBool(value string) (bool, error) {
	switch value {
	case "True", "true", "1":
		return true, nil
	case "False", "false", "0":
		return false, nil
	}
	return false, &parsererror.InvalidBooleanLiteralError{Value: value}
}
