package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		locale string
		want   string
	}{
		{"plain dot decimal", "1234.56", "", "1234.56"},
		{"dot decimal with grouping", "1,234.56", "en_US", "1234.56"},
		{"comma decimal with space grouping", "1 234,56", "fr_FR", "1234.56"},
		{"comma decimal with dot grouping", "1.234,56", "de_DE", "1234.56"},
		{"comma decimal posix charset suffix", "1 234,56", "fr_FR.UTF-8", "1234.56"},
		{"non-breaking space grouping", "1 234,56", "fr_FR", "1234.56"},
		{"narrow non-breaking space grouping", "1 234,56", "fr_FR", "1234.56"},
		{"swiss apostrophe grouping", "1'234.56", "de_CH", "1234.56"},
		{"negative amount", "-12.34", "", "-12.34"},
		{"negative comma decimal", "-12,34", "nl_NL", "-12.34"},
		{"bcp47 tag", "1.234,56", "de-AT", "1234.56"},
		{"c locale", "1234.56", "C", "1234.56"},
		{"dot-decimal locale keeps grouping commas out", "1234.56", "ja_JP", "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.amount, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_Errors(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		locale string
	}{
		{"not a number", "abc", ""},
		{"empty", "", ""},
		{"only spaces", "   ", "fr_FR"},
		{"two decimal separators", "1,2,3", "fr_FR"},
		{"malformed locale", "12.34", "not a locale!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAmount(tt.amount, tt.locale)
			assert.Error(t, err)
		})
	}
}

func TestLocaleSeparators(t *testing.T) {
	tests := []struct {
		locale      string
		wantDecimal rune
		wantGroup   rune
	}{
		{"", '.', ','},
		{"C", '.', ','},
		{"POSIX", '.', ','},
		{"en_US", '.', ','},
		{"fr_FR", ',', '.'},
		{"de_DE.ISO8859-1", ',', '.'},
		{"fr_CH", '.', '\''},
		{"it_CH", '.', '\''},
		{"en_GB", '.', ','},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			seps, err := localeSeparators(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDecimal, seps.decimal)
			assert.Equal(t, tt.wantGroup, seps.group)
		})
	}
}
