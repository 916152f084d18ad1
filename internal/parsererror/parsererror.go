// Package parsererror defines the error types surfaced by the PayPal
// statement parser. Every failure aborts the whole run; there is no
// partial-success mode, so each type carries enough context to diagnose
// the input without re-running.
package parsererror

import (
	"fmt"
	"strings"
)

// SchemaMismatchError is returned when the CSV header row does not match
// the expected PayPal export schema. It is fatal and raised before any
// data row is transformed.
type SchemaMismatchError struct {
	Expected []string
	Actual   []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("header template doesn't match:\nexpected: [%s]\nactual  : [%s]",
		strings.Join(e.Expected, ", "), strings.Join(e.Actual, ", "))
}

// DateParseError is returned when a row's Date field does not match the
// configured date format.
type DateParseError struct {
	Value  string
	Format string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("failed to parse date '%s' with format '%s': %v", e.Value, e.Format, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// NumberParseError is returned when a row's Amount field is not a valid
// number under the configured locale.
type NumberParseError struct {
	Value  string
	Locale string
	Err    error
}

func (e *NumberParseError) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("failed to parse number '%s': %v", e.Value, e.Err)
	}
	return fmt.Sprintf("failed to parse number '%s' under locale '%s': %v", e.Value, e.Locale, e.Err)
}

func (e *NumberParseError) Unwrap() error {
	return e.Err
}

// InvalidBooleanLiteralError is returned at settings-build time when a
// boolean setting holds a literal outside True/true/1/False/false/0.
type InvalidBooleanLiteralError struct {
	Value string
}

func (e *InvalidBooleanLiteralError) Error() string {
	return fmt.Sprintf("can't parse boolean value: %s", e.Value)
}

// ValidationError represents a file-level validation failure that is not
// a schema mismatch, e.g. an empty or unreadable input file.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
