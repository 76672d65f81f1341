package parser

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

func TestDedupe(t *testing.T) {
	a := Transaction{
		Date:        date(2024, time.January, 15),
		Amount:      450,
		Description: "UPI-SWIGGY BANGALORE",
		Type:        classifier.TypeExpense,
		Category:    "food",
	}
	rescan := a
	rescan.RawLine = "same line read twice by the OCR pass"

	b := a
	b.Amount = 500

	got := Dedupe([]Transaction{a, rescan, b})
	require.Len(t, got, 2)
	// First occurrence wins.
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
}

func TestDedupe_PrefixCollision(t *testing.T) {
	// Only the first 20 description characters participate in the key, so
	// same-day same-amount narrations sharing that prefix collapse.
	a := Transaction{Date: date(2024, time.January, 15), Amount: 450, Description: "RECURRING PAYMENT NETFLIX"}
	b := Transaction{Date: date(2024, time.January, 15), Amount: 450, Description: "RECURRING PAYMENT SPOTIFY"}

	assert.Len(t, Dedupe([]Transaction{a, b}), 1)
}

func TestDedupe_Idempotent(t *testing.T) {
	faker := gofakeit.New(11)

	txs := make([]Transaction, 0, 60)
	for i := 0; i < 60; i++ {
		txs = append(txs, Transaction{
			Date:        date(2024, time.Month(faker.Number(1, 12)), faker.Number(1, 28)),
			Amount:      float64(faker.Number(1, 5000)),
			Description: faker.Company(),
			Type:        classifier.TypeExpense,
			Category:    "other",
		})
	}
	// Guarantee at least some duplicates.
	txs = append(txs, txs[:10]...)

	once := Dedupe(txs)
	twice := Dedupe(once)

	assert.LessOrEqual(t, len(once), 60)
	assert.Equal(t, once, twice)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
