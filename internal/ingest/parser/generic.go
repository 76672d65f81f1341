package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

// Generic parses free-form statement text line by line: find a date
// literal, collect candidate amounts, pick one, and treat the remainder of
// the line as the narration. It is the strictest text strategy and the
// first one tried on OCR and PDF output.
type Generic struct {
	classifier *classifier.Classifier
}

func NewGeneric(c *classifier.Classifier) *Generic {
	return &Generic{classifier: c}
}

func (g *Generic) Name() string { return "generic" }

const minGenericLineLen = 15

// reNoise strips punctuation artifacts OCR tends to sprinkle into
// narrations.
var reNoise = regexp.MustCompile(`[*#!@$%^&()]`)

func (g *Generic) Parse(text string, now time.Time) []Transaction {
	lines := strings.Split(text, "\n")
	var txs []Transaction

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if len(line) < minGenericLineLen {
			continue
		}

		dateStr, date, ok := extractDate(line, dateShapes)
		if !ok || !withinDateWindow(date, now) {
			continue
		}

		amount, ok := selectAmount(line, collectAmounts(line))
		if !ok {
			continue
		}

		desc := cleanDescription(line, dateStr, amount.Text)
		if len(desc) < minDescriptionLen {
			// Widen the context window: OCR often splits the narration
			// onto the neighbouring lines.
			ctx := contextWindow(lines, i)
			desc = cleanDescription(ctx, dateStr, amount.Text)
		}
		desc = truncate(desc, maxDescriptionLen)
		if desc == "" {
			desc = defaultDescription
		}

		typ, category := g.classifier.Classify(desc, line)
		txs = append(txs, Transaction{
			Date:        date,
			Amount:      amount.Value,
			Description: desc,
			Type:        typ,
			Category:    category,
			RawLine:     line,
		})
	}
	return txs
}

const (
	minDescriptionLen  = 5
	defaultDescription = "Transaction"
)

// cleanDescription removes the matched date and amount literals and strips
// symbol noise.
func cleanDescription(line, dateStr, amountText string) string {
	s := strings.Replace(line, dateStr, "", 1)
	if amountText != "" {
		s = strings.Replace(s, amountText, "", 1)
	}
	s = reNoise.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// contextWindow joins the previous, current and next raw lines.
func contextWindow(lines []string, i int) string {
	var parts []string
	if i > 0 {
		parts = append(parts, strings.TrimSpace(lines[i-1]))
	}
	parts = append(parts, strings.TrimSpace(lines[i]))
	if i < len(lines)-1 {
		parts = append(parts, strings.TrimSpace(lines[i+1]))
	}
	return strings.Join(parts, " ")
}
