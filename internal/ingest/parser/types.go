// Package parser turns extracted statement text and structured CSV rows
// into normalized transactions. It hosts the strategy chain the ingest
// service escalates through: generic line parsing, wallet-statement
// parsing, structured rows and a last-resort lenient pass.
package parser

import (
	"fmt"
	"time"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

// Transaction is the only entity that crosses the ingestion boundary.
// Instances are created by a strategy, possibly dropped by Dedupe, and
// handed to the caller whole; nothing downstream mutates them.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Type        classifier.Type `json:"type"`
	Category    string          `json:"category"`
	RawLine     string          `json:"raw_line"`
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %.2f %q (%s)",
		t.Date.Format("2006-01-02"), t.Type, t.Amount, t.Description, t.Category)
}

const (
	// maxDescriptionLen caps descriptions before emission.
	maxDescriptionLen = 100

	// dateWindowYears rejects dates older than this many years; together
	// with the not-in-the-future rule it guards against OCR digit
	// corruption producing wild dates.
	dateWindowYears = 5

	// minAmount and maxAmount bound the plausible transaction range.
	minAmount = 1
	maxAmount = 1_000_000
)

// withinDateWindow reports whether d lies in (now-5y, now].
func withinDateWindow(d, now time.Time) bool {
	if d.After(now) {
		return false
	}
	return !d.Before(now.AddDate(-dateWindowYears, 0, 0))
}

// plausibleAmount reports whether v is inside the accepted transaction
// range.
func plausibleAmount(v float64) bool {
	return v >= minAmount && v <= maxAmount
}

// truncate caps s at n characters. The cut is on a rune boundary so a
// multi-byte character straddling the limit is dropped whole rather than
// split into invalid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
