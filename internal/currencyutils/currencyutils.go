// Package currencyutils provides locale-aware decimal parsing for
// statement amounts. The locale is an explicit parameter of every call;
// no process-wide locale state is read or mutated.
package currencyutils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// separators holds the numeric conventions of a locale.
type separators struct {
	decimal rune
	group   rune
}

// dotDecimal is the "C" convention and the fallback for locales the
// table below doesn't know.
var dotDecimal = separators{decimal: '.', group: ','}

// commaDecimalLanguages lists base languages whose locales write
// decimals with a comma. Their group separator is a dot or a space;
// spaces are stripped before parsing, so a dot group separator covers
// both.
var commaDecimalLanguages = map[string]bool{
	"af": true, "bg": true, "ca": true, "cs": true, "da": true,
	"de": true, "el": true, "es": true, "et": true, "fi": true,
	"fr": true, "hr": true, "hu": true, "id": true, "is": true,
	"it": true, "lt": true, "lv": true, "nb": true, "nl": true,
	"nn": true, "no": true, "pl": true, "pt": true, "ro": true,
	"ru": true, "sk": true, "sl": true, "sr": true, "sv": true,
	"tr": true, "uk": true, "vi": true,
}

// localeSeparators resolves the numeric conventions of a locale
// identifier. Accepts BCP 47 tags ("fr-FR") as well as POSIX ids
// ("fr_FR.UTF-8"). Empty, "C" and "POSIX" mean the dot-decimal default.
func localeSeparators(localeID string) (separators, error) {
	normalized := normalizeLocaleID(localeID)
	if normalized == "" {
		return dotDecimal, nil
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return separators{}, fmt.Errorf("invalid locale '%s': %w", localeID, err)
	}

	// Swiss locales group with an apostrophe and use a dot decimal
	// regardless of language.
	if region, _ := tag.Region(); region.String() == "CH" {
		return separators{decimal: '.', group: '\''}, nil
	}

	base, _ := tag.Base()
	if commaDecimalLanguages[base.String()] {
		return separators{decimal: ',', group: '.'}, nil
	}
	return dotDecimal, nil
}

// normalizeLocaleID turns a POSIX locale id into a BCP 47 candidate:
// "fr_FR.UTF-8@euro" -> "fr-FR". Returns "" for the C/POSIX locale.
func normalizeLocaleID(localeID string) string {
	id := localeID
	if i := strings.IndexByte(id, '@'); i >= 0 {
		id = id[:i]
	}
	if i := strings.IndexByte(id, '.'); i >= 0 {
		id = id[:i]
	}
	id = strings.TrimSpace(strings.ReplaceAll(id, "_", "-"))
	if id == "" || id == "C" || id == "POSIX" {
		return ""
	}
	return id
}

// ParseAmount parses an amount string under the numeric conventions of
// the given locale. All whitespace (including the non-breaking spaces
// PayPal exports use as group separators) is stripped first, then the
// locale's group separator is removed and its decimal separator mapped
// to a dot.
func ParseAmount(amountStr, localeID string) (decimal.Decimal, error) {
	seps, err := localeSeparators(localeID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, amountStr)
	if stripped == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	normalized := strings.ReplaceAll(stripped, string(seps.group), "")
	if seps.decimal != '.' {
		normalized = strings.ReplaceAll(normalized, string(seps.decimal), ".")
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount '%s': %w", amountStr, err)
	}
	return amount, nil
}
