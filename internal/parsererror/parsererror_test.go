package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaMismatchError(t *testing.T) {
	err := &SchemaMismatchError{
		Expected: []string{"Date", "Time", "Name"},
		Actual:   []string{"Datum", "Zeit", "Name"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "header template doesn't match")
	assert.Contains(t, msg, "expected: [Date, Time, Name]")
	assert.Contains(t, msg, "actual  : [Datum, Zeit, Name]")
}

func TestDateParseError(t *testing.T) {
	underlying := errors.New("month out of range")
	err := &DateParseError{
		Value:  "45/13/2020",
		Format: "%d/%m/%Y",
		Err:    underlying,
	}

	assert.Equal(t, "failed to parse date '45/13/2020' with format '%d/%m/%Y': month out of range", err.Error())
	assert.True(t, errors.Is(err, underlying))
}

func TestNumberParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NumberParseError
		expected string
	}{
		{
			name: "with locale",
			err: &NumberParseError{
				Value:  "abc",
				Locale: "fr_FR",
				Err:    errors.New("invalid syntax"),
			},
			expected: "failed to parse number 'abc' under locale 'fr_FR': invalid syntax",
		},
		{
			name: "without locale",
			err: &NumberParseError{
				Value: "abc",
				Err:   errors.New("invalid syntax"),
			},
			expected: "failed to parse number 'abc': invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvalidBooleanLiteralError(t *testing.T) {
	err := &InvalidBooleanLiteralError{Value: "yes"}
	assert.Equal(t, "can't parse boolean value: yes", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		FilePath: "/path/to/export.csv",
		Reason:   "file is empty",
	}
	assert.Equal(t, "validation failed for /path/to/export.csv: file is empty", err.Error())
}

func TestErrorTypeAssertions(t *testing.T) {
	var schemaErr *SchemaMismatchError
	var dateErr *DateParseError

	wrapped := error(&SchemaMismatchError{Expected: []string{"Date"}, Actual: []string{"X"}})
	assert.True(t, errors.As(wrapped, &schemaErr))
	assert.False(t, errors.As(wrapped, &dateErr))
}
