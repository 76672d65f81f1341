package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

func TestHasWalletMarkers(t *testing.T) {
	assert.True(t, HasWalletMarkers("Google Pay\nTransaction statement"))
	assert.True(t, HasWalletMarkers("Transaction statement for Dec 2025"))
	assert.False(t, HasWalletMarkers("HDFC BANK STATEMENT"))
}

func TestWallet_Parse(t *testing.T) {
	w := NewWallet(classifier.New())

	text := `Google Pay
Transaction statement

01Dec, 2025
Paid to Coffee Shop UPITransactionID:123456 ₹150
Received from Rahul Kumar UPITransactionID:98765 ₹2,000
02Dec, 2025
Paid to Uber UPI 4532 ₹230`

	txs := w.Parse(text, testNow)
	require.Len(t, txs, 3)

	assert.Equal(t, date(2025, time.December, 1), txs[0].Date)
	assert.Equal(t, 150.0, txs[0].Amount)
	assert.Equal(t, "Coffee Shop", txs[0].Description)
	assert.Equal(t, classifier.TypeExpense, txs[0].Type)
	assert.Equal(t, "food", txs[0].Category)

	assert.Equal(t, date(2025, time.December, 1), txs[1].Date)
	assert.Equal(t, 2000.0, txs[1].Amount)
	assert.Equal(t, "Rahul Kumar", txs[1].Description)
	assert.Equal(t, classifier.TypeIncome, txs[1].Type)
	assert.Equal(t, "other_income", txs[1].Category)

	// The second header advances the running day; the mangled
	// transaction id falls back to the looser extraction pass.
	assert.Equal(t, date(2025, time.December, 2), txs[2].Date)
	assert.Equal(t, 230.0, txs[2].Amount)
	assert.Equal(t, "Uber", txs[2].Description)
	assert.Equal(t, "transport", txs[2].Category)
}

func TestWallet_Parse_SkipsLinesWithoutHeader(t *testing.T) {
	w := NewWallet(classifier.New())

	// No day header has been seen yet, so the line has no date to
	// attach to.
	txs := w.Parse("Paid to Coffee Shop UPITransactionID:123456 ₹150", testNow)
	assert.Empty(t, txs)
}

func TestWallet_Parse_InvalidHeaderResetsDay(t *testing.T) {
	w := NewWallet(classifier.New())

	text := `01Dec, 2025
Paid to Coffee Shop UPITransactionID:1 ₹150
31Feb, 2026
Paid to Grocery Store UPITransactionID:2 ₹300`

	txs := w.Parse(text, testNow)
	require.Len(t, txs, 1)
	assert.Equal(t, "Coffee Shop", txs[0].Description)
}

func TestWallet_Parse_SkipsMalformedLines(t *testing.T) {
	w := NewWallet(classifier.New())

	text := `01Dec, 2025
Paid to Coffee Shop UPITransactionID:1 without amount
Refund note ₹150
Paid to Coffee Shop UPITransactionID:1 ₹0`

	assert.Empty(t, w.Parse(text, testNow))
}
