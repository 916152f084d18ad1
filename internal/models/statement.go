// Package models defines the statement data model produced by the PayPal
// parser and consumed by the OFX serializer.
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine represents a single normalized statement transaction.
// Lines are immutable once built; ID is derived from the line's own
// content so that repeated imports of the same export produce the same
// ids and downstream consumers can deduplicate.
type StatementLine struct {
	ID     string
	Date   time.Time
	Payee  string
	Memo   string
	Amount decimal.Decimal
}

// Statement aggregates the lines parsed from one export together with
// the identifiers the serializer needs.
type Statement struct {
	BankID    string
	AccountID string
	Currency  string
	Lines     []StatementLine
}

// NewStatement creates an empty statement for the given account.
func NewStatement(bankID, accountID, currency string) *Statement {
	return &Statement{
		BankID:    bankID,
		AccountID: accountID,
		Currency:  currency,
	}
}

// GenerateTransactionID derives a stable identifier from a line's date,
// memo, amount and payee. Two lines with identical content always
// receive the same id.
func GenerateTransactionID(line StatementLine) string {
	parts := []string{
		line.Date.Format("2006-01-02"),
		line.Memo,
		line.Amount.String(),
		line.Payee,
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}
