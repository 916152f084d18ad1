package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(date string, memo, amount, payee string) StatementLine {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return StatementLine{
		Date:   d,
		Memo:   memo,
		Amount: decimal.RequireFromString(amount),
		Payee:  payee,
	}
}

func TestGenerateTransactionID_Deterministic(t *testing.T) {
	a := line("2020-02-01", "Payment", "-12.34", "Jane Doe")
	b := line("2020-02-01", "Payment", "-12.34", "Jane Doe")

	idA := GenerateTransactionID(a)
	idB := GenerateTransactionID(b)

	require.NotEmpty(t, idA)
	assert.Equal(t, idA, idB)
}

func TestGenerateTransactionID_SensitiveToEveryField(t *testing.T) {
	base := line("2020-02-01", "Payment", "-12.34", "Jane Doe")
	baseID := GenerateTransactionID(base)

	variants := []StatementLine{
		line("2020-02-02", "Payment", "-12.34", "Jane Doe"),
		line("2020-02-01", "Refund", "-12.34", "Jane Doe"),
		line("2020-02-01", "Payment", "12.34", "Jane Doe"),
		line("2020-02-01", "Payment", "-12.34", "John Doe"),
	}
	for _, v := range variants {
		assert.NotEqual(t, baseID, GenerateTransactionID(v))
	}
}

func TestGenerateTransactionID_NoFieldConcatenationCollision(t *testing.T) {
	// "Pay" + "mentX" must not collide with "Paym" + "entX".
	a := line("2020-02-01", "Pay", "-1", "mentX")
	b := line("2020-02-01", "Paym", "-1", "entX")
	assert.NotEqual(t, GenerateTransactionID(a), GenerateTransactionID(b))
}

func TestNewStatement(t *testing.T) {
	stmt := NewStatement("PayPal", "acct-1", "USD")
	assert.Equal(t, "PayPal", stmt.BankID)
	assert.Equal(t, "acct-1", stmt.AccountID)
	assert.Equal(t, "USD", stmt.Currency)
	assert.Empty(t, stmt.Lines)
}
