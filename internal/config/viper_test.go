package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ionicblue/ofxstatement-paypal/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes to dir for the duration of the test, restoring the
// previous working directory on cleanup. Equivalent to t.Chdir, which
// requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestParseBool(t *testing.T) {
	trueLiterals := []string{"True", "true", "1"}
	for _, lit := range trueLiterals {
		got, err := ParseBool(lit)
		require.NoError(t, err, "literal: %s", lit)
		assert.True(t, got)
	}

	falseLiterals := []string{"False", "false", "0"}
	for _, lit := range falseLiterals {
		got, err := ParseBool(lit)
		require.NoError(t, err, "literal: %s", lit)
		assert.False(t, got)
	}
}

func TestParseBool_InvalidLiterals(t *testing.T) {
	badLiterals := []string{"", "yes", "no", "TRUE", "FALSE", "2", "t", "on"}
	for _, lit := range badLiterals {
		_, err := ParseBool(lit)
		require.Error(t, err, "literal: %q", lit)

		var boolErr *parsererror.InvalidBooleanLiteralError
		assert.True(t, errors.As(err, &boolErr), "literal: %q", lit)
	}
}

func TestInitializeSettings_Defaults(t *testing.T) {
	// Run from a temp dir so no stray config file interferes.
	chdir(t, t.TempDir())

	settings, err := InitializeSettings()
	require.NoError(t, err)

	assert.Equal(t, "info", settings.Log.Level)
	assert.Equal(t, "text", settings.Log.Format)
	assert.Equal(t, "iso8859-1", settings.PayPal.Encoding)
	assert.Equal(t, "%d/%m/%Y", settings.PayPal.DateFormat)
	assert.Equal(t, "false", settings.PayPal.Analyze)
	assert.Equal(t, "false", settings.PayPal.MergePayee)
	assert.Empty(t, settings.PayPal.AccountID)
}

func TestInitializeSettings_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OFX_PAYPAL_CURRENCY", "USD")
	t.Setenv("OFX_PAYPAL_MERGE_PAYEE", "true")

	settings, err := InitializeSettings()
	require.NoError(t, err)

	assert.Equal(t, "USD", settings.PayPal.Currency)
	assert.Equal(t, "true", settings.PayPal.MergePayee)
}

func TestInitializeSettings_RejectsBadBoolean(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OFX_PAYPAL_MERGE_PAYEE", "maybe")

	_, err := InitializeSettings()
	require.Error(t, err)

	var boolErr *parsererror.InvalidBooleanLiteralError
	assert.True(t, errors.As(err, &boolErr))
}

func TestInitializeSettings_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	configYAML := []byte("paypal:\n  account_id: acct-42\n  currency: EUR\n  locale: fr_FR\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), configYAML, 0o600))

	settings, err := InitializeSettings()
	require.NoError(t, err)

	assert.Equal(t, "acct-42", settings.PayPal.AccountID)
	assert.Equal(t, "EUR", settings.PayPal.Currency)
	assert.Equal(t, "fr_FR", settings.PayPal.Locale)
	// Untouched keys keep their defaults.
	assert.Equal(t, "iso8859-1", settings.PayPal.Encoding)
}
