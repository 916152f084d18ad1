// Package paypalparser converts PayPal CSV transaction exports into
// statement lines. It validates the export header, filters rows by the
// configured currency, optionally merges cross-currency conversion rows
// with the foreign transaction they settled, and derives a stable id
// for every emitted line.
package paypalparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ionicblue/ofxstatement-paypal/internal/currencyutils"
	"github.com/ionicblue/ofxstatement-paypal/internal/dateutils"
	"github.com/ionicblue/ofxstatement-paypal/internal/fileutils"
	"github.com/ionicblue/ofxstatement-paypal/internal/models"
	"github.com/ionicblue/ofxstatement-paypal/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// BankID identifies PayPal in the generated statement.
const BankID = "PayPal"

// DefaultEncoding is the charset PayPal exports use unless configured
// otherwise.
const DefaultEncoding = "iso8859-1"

// validHeader is the exact ordered column list of a PayPal CSV export.
// The comparison is case-sensitive; anything else is an unsupported
// export format.
var validHeader = []string{
	"Date",
	"Time",
	"TimeZone",
	"Name",
	"Type",
	"Status",
	"Currency",
	"Amount",
	"Receipt ID",
	"Balance",
}

// Config carries the settings of one parse run. It is supplied once at
// construction and not mutated afterwards.
type Config struct {
	// AccountID is attached to the generated statement for downstream
	// serialization.
	AccountID string
	// Currency is the target currency; rows in other currencies are
	// filtered out (or, in merge mode, retained for matching).
	Currency string
	// Locale names the numeric conventions of the Amount column, e.g.
	// "fr_FR". Empty means dot-decimal.
	Locale string
	// Encoding is the charset of the export file. Empty means
	// DefaultEncoding.
	Encoding string
	// DateFormat is a strftime-style pattern for the Date column. Empty
	// means dateutils.DefaultDateFormat.
	DateFormat string
	// Analyze is reserved for future memo enrichment and currently has
	// no effect.
	Analyze bool
	// MergePayee enables pairing currency-conversion rows with the
	// foreign transaction they settled, so the emitted line carries the
	// real payee and memo.
	MergePayee bool
}

// PayPalCSVRow represents a single row in a PayPal CSV export.
// It uses struct tags for gocsv unmarshaling.
type PayPalCSVRow struct {
	Date      string `csv:"Date"`
	Time      string `csv:"Time"`
	TimeZone  string `csv:"TimeZone"`
	Name      string `csv:"Name"`
	Type      string `csv:"Type"`
	Status    string `csv:"Status"`
	Currency  string `csv:"Currency"`
	Amount    string `csv:"Amount"`
	ReceiptID string `csv:"Receipt ID"`
	Balance   string `csv:"Balance"`
}

// rowClass is the merge-mode classification of a row.
type rowClass int

const (
	// classDropped rows never contribute to the output.
	classDropped rowClass = iota
	// classTarget rows are in the target currency and transform
	// directly.
	classTarget
	// classTargetConversion rows are the target-currency leg of a
	// currency conversion; they transform and then undergo the pending
	// lookup.
	classTargetConversion
	// classForeignPending rows are foreign transactions retained for a
	// later conversion match. They are never emitted themselves.
	classForeignPending
)

// isCurrencyConversion reports whether a row's Type marks it as a
// currency-conversion artifact.
func isCurrencyConversion(txType string) bool {
	return strings.Contains(strings.ToLower(txType), "currency conversion")
}

// classify applies the merge-mode state machine to one row.
func classify(row PayPalCSVRow, cfg Config) rowClass {
	if row.Currency == cfg.Currency {
		if cfg.MergePayee && isCurrencyConversion(row.Type) {
			return classTargetConversion
		}
		return classTarget
	}
	if cfg.MergePayee && !isCurrencyConversion(row.Type) {
		return classForeignPending
	}
	return classDropped
}

// pendingKey identifies candidate foreign rows by their exact Date and
// Time field values.
type pendingKey struct {
	date string
	time string
}

// pendingSet holds foreign rows awaiting a conversion match, in
// encounter order per key. Unmatched entries are simply discarded when
// processing ends.
type pendingSet map[pendingKey][]PayPalCSVRow

func (p pendingSet) add(row PayPalCSVRow) {
	key := pendingKey{date: row.Date, time: row.Time}
	p[key] = append(p[key], row)
}

// take removes and returns the first pending row matching the given
// date and time. Matching is first-found; there is no secondary
// tie-break beyond date+time equality.
func (p pendingSet) take(date, time string) (PayPalCSVRow, bool) {
	key := pendingKey{date: date, time: time}
	rows := p[key]
	if len(rows) == 0 {
		return PayPalCSVRow{}, false
	}
	row := rows[0]
	if len(rows) == 1 {
		delete(p, key)
	} else {
		p[key] = rows[1:]
	}
	return row, true
}

// ValidateHeader compares a CSV header row, cells trimmed of
// surrounding whitespace, element-wise and in order against the PayPal
// export schema.
func ValidateHeader(header []string) error {
	actual := make([]string, len(header))
	for i, c := range header {
		actual[i] = strings.TrimSpace(c)
	}

	mismatch := len(actual) != len(validHeader)
	if !mismatch {
		for i := range validHeader {
			if actual[i] != validHeader[i] {
				mismatch = true
				break
			}
		}
	}
	if mismatch {
		return &parsererror.SchemaMismatchError{
			Expected: append([]string(nil), validHeader...),
			Actual:   actual,
		}
	}
	return nil
}

// Parse reads a decoded PayPal CSV export and returns the statement it
// describes. The header is validated before any row is transformed; a
// malformed row aborts the whole parse.
func Parse(r io.Reader, cfg Config) (*models.Statement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	header, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateHeader(header); err != nil {
		return nil, err
	}

	var rows []PayPalCSVRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV: %w", err)
	}

	lines, err := transform(rows, cfg)
	if err != nil {
		return nil, err
	}

	statement := models.NewStatement(BankID, cfg.AccountID, cfg.Currency)
	statement.Lines = lines

	log.WithFields(logrus.Fields{
		"rows":  len(rows),
		"lines": len(lines),
	}).Info("Parsed PayPal CSV export")

	return statement, nil
}

// ParseFile decodes filePath from the configured charset and parses it.
func ParseFile(filePath string, cfg Config) (*models.Statement, error) {
	log.WithField("file", filePath).Info("Parsing PayPal CSV file")

	data, err := readDecoded(filePath, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data), cfg)
}

// ValidateFormat checks whether the file is a PayPal CSV export by
// inspecting its header row. A header mismatch yields false, not an
// error, so callers can probe files of unknown origin.
func ValidateFormat(filePath string, cfg Config) (bool, error) {
	log.WithField("file", filePath).Info("Validating PayPal CSV format")

	data, err := readDecoded(filePath, cfg.Encoding)
	if err != nil {
		return false, err
	}

	header, err := readHeader(data)
	if err != nil {
		return false, nil
	}
	if err := ValidateHeader(header); err != nil {
		log.WithError(err).Info("Header does not match PayPal export schema")
		return false, nil
	}
	return true, nil
}

func readDecoded(filePath, encodingName string) ([]byte, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	return fileutils.ReadFileWithEncoding(filePath, encodingName)
}

// readHeader extracts the first CSV record.
func readHeader(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return nil, &parsererror.ValidationError{Reason: "input is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	return header, nil
}

// transform runs the single-pass row traversal: classification, pending
// bookkeeping, and row-to-line mapping.
func transform(rows []PayPalCSVRow, cfg Config) ([]models.StatementLine, error) {
	pending := pendingSet{}
	var lines []models.StatementLine

	for _, row := range rows {
		class := classify(row, cfg)
		switch class {
		case classForeignPending:
			pending.add(row)
			continue
		case classDropped:
			continue
		}

		line, err := buildLine(row, cfg)
		if err != nil {
			return nil, err
		}

		if class == classTargetConversion {
			if foreign, ok := pending.take(row.Date, row.Time); ok {
				// The conversion row inherits the identity of the real
				// transaction it paired with.
				line.Payee = foreign.Name
				line.Memo = foreign.Type
			}
		}

		line.ID = models.GenerateTransactionID(line)
		lines = append(lines, line)
	}

	return lines, nil
}

// buildLine maps one retained row onto a statement line. The id is
// assigned by the caller once payee and memo are final.
func buildLine(row PayPalCSVRow, cfg Config) (models.StatementLine, error) {
	format := cfg.DateFormat
	if format == "" {
		format = dateutils.DefaultDateFormat
	}

	date, err := dateutils.ParseDate(row.Date, format)
	if err != nil {
		return models.StatementLine{}, &parsererror.DateParseError{Value: row.Date, Format: format, Err: err}
	}

	amount, err := currencyutils.ParseAmount(row.Amount, cfg.Locale)
	if err != nil {
		return models.StatementLine{}, &parsererror.NumberParseError{Value: row.Amount, Locale: cfg.Locale, Err: err}
	}

	return models.StatementLine{
		Date:   date,
		Memo:   row.Type,
		Amount: amount,
		Payee:  row.Name,
	}, nil
}
