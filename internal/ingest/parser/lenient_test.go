package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

func TestLenient_Parse(t *testing.T) {
	l := NewLenient(classifier.New())

	// Badly OCR'd text: no currency symbols, no labels, just a numeric
	// date and figures. The largest in-range number wins.
	text := `15/01/24 paid swiggy txn 450.00 12.00
too short`

	txs := l.Parse(text, testNow)
	require.Len(t, txs, 1)
	assert.Equal(t, date(2024, time.January, 15), txs[0].Date)
	assert.Equal(t, 450.0, txs[0].Amount)
	assert.Equal(t, classifier.TypeExpense, txs[0].Type)
	assert.Equal(t, "food", txs[0].Category)
}

func TestLenient_Parse_NumericDatesOnly(t *testing.T) {
	l := NewLenient(classifier.New())

	// Named-month dates are left to the stricter strategies.
	assert.Empty(t, l.Parse("15 Jan 2024 payment 450.00", testNow))
}
