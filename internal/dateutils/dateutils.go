// Package dateutils provides date parsing for the strftime-style
// patterns used in parser settings, e.g. the PayPal default "%d/%m/%Y".
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateFormat is the pattern PayPal exports use unless configured
// otherwise.
const DefaultDateFormat = "%d/%m/%Y"

// directives maps strftime directives to Go reference-time layout
// elements.
var directives = map[byte]string{
	'd': "02",
	'e': "_2",
	'm': "01",
	'y': "06",
	'Y': "2006",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'Z': "MST",
}

// ToGoLayout converts a strftime-style pattern into a Go time layout.
// An unknown directive is an error rather than a silent passthrough so
// that a misconfigured date format fails loudly.
func ToGoLayout(pattern string) (string, error) {
	var layout strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			layout.WriteByte(c)
			continue
		}
		if i+1 >= len(pattern) {
			return "", fmt.Errorf("dangling '%%' at end of date format '%s'", pattern)
		}
		i++
		if pattern[i] == '%' {
			layout.WriteByte('%')
			continue
		}
		elem, ok := directives[pattern[i]]
		if !ok {
			return "", fmt.Errorf("unsupported date format directive '%%%c' in '%s'", pattern[i], pattern)
		}
		layout.WriteString(elem)
	}
	return layout.String(), nil
}

// ParseDate parses dateStr according to a strftime-style pattern.
func ParseDate(dateStr, pattern string) (time.Time, error) {
	layout, err := ToGoLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(layout, dateStr)
}
