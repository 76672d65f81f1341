package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

// Lenient is the last resort for badly OCR'd documents: any line with a
// date-like token (numeric shapes only) and at least one plausible number
// becomes a transaction. No label-based disambiguation is attempted; the
// largest in-range number wins.
type Lenient struct {
	classifier *classifier.Classifier
}

func NewLenient(c *classifier.Classifier) *Lenient {
	return &Lenient{classifier: c}
}

func (l *Lenient) Name() string { return "lenient" }

const minLenientLineLen = 10

// reLenientNumber accepts well-formed figures only: optional thousands
// groups, optional two decimal places.
var reLenientNumber = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

func (l *Lenient) Parse(text string, now time.Time) []Transaction {
	var txs []Transaction

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if len(line) < minLenientLineLen {
			continue
		}

		dateStr, date, ok := extractDate(line, lenientDateShapes)
		if !ok || !withinDateWindow(date, now) {
			continue
		}

		var amount float64
		var amountText string
		for _, m := range reLenientNumber.FindAllString(line, -1) {
			v, ok := parseNumber(m)
			if ok && v > amount && plausibleAmount(v) {
				amount = v
				amountText = m
			}
		}
		if amount == 0 {
			continue
		}

		desc := truncate(cleanDescription(line, dateStr, amountText), maxDescriptionLen)
		if desc == "" {
			desc = defaultDescription
		}

		typ, category := l.classifier.Classify(desc, line)
		txs = append(txs, Transaction{
			Date:        date,
			Amount:      amount,
			Description: desc,
			Type:        typ,
			Category:    category,
			RawLine:     line,
		})
	}
	return txs
}
