package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CandidateAmount is a numeric value found in a line together with the
// full matched span and its offset. Text carries the whole match, symbol
// and label included, so description cleanup removes "₹450.00" or
// "Withdrawal: 2500" in one piece; the numeric value is parsed from the
// capture group alone.
type CandidateAmount struct {
	Value  float64
	Text   string
	Offset int
}

// Independent regex families for amount literals. Each family contributes
// candidates; the general number pattern only runs when none of the
// labelled families matched anything.
var amountFamilies = []*regexp.Regexp{
	// Currency symbol or Cr/Dr prefix: "Rs. 1,500", "₹150", "INR 2000".
	regexp.MustCompile(`(?i)(?:Rs\.?|₹|INR|Cr|Dr)\s*([0-9][0-9,]*\.?[0-9]*)`),
	// Cr/Dr suffix: "1,500.00 Cr".
	regexp.MustCompile(`(?i)([0-9][0-9,]*\.?[0-9]*)\s*(?:Cr|Dr)\.?`),
	// Explicit transaction label: "Withdrawal: 500".
	regexp.MustCompile(`(?i)(?:Credit|Debit|Withdrawal|Deposit)\s*[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	// Amount with a trailing rupee symbol: "150 ₹".
	regexp.MustCompile(`([0-9][0-9,]*\.?[0-9]*)\s*₹`),
}

// reGeneralNumber is the last-resort family. regexp's leftmost-longest
// matching over the digit/comma class guarantees matches are never
// adjacent to further digits.
var reGeneralNumber = regexp.MustCompile(`[0-9][0-9,]*\.?[0-9]*`)

// reDirectional marks lines where statement layout puts the transaction
// amount before fee and running-balance columns. Uppercase on purpose:
// these are printed column labels, not narration words.
var reDirectional = regexp.MustCompile(`DEPOSIT|WITHDRAWAL`)

const generalNumberCap = 10_000_000

// parseNumber converts an amount literal to a value via decimal to avoid
// float parsing artifacts on thousands-separated input.
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// collectAmounts gathers every candidate amount in the line across all
// families, falling back to bare numbers when no family matched.
func collectAmounts(line string) []CandidateAmount {
	var out []CandidateAmount

	for _, re := range amountFamilies {
		for _, idx := range re.FindAllStringSubmatchIndex(line, -1) {
			if idx[2] < 0 {
				continue
			}
			if v, ok := parseNumber(line[idx[2]:idx[3]]); ok {
				out = append(out, CandidateAmount{Value: v, Text: line[idx[0]:idx[1]], Offset: idx[0]})
			}
		}
	}

	if len(out) > 0 {
		return out
	}

	for _, idx := range reGeneralNumber.FindAllStringIndex(line, -1) {
		text := line[idx[0]:idx[1]]
		v, ok := parseNumber(text)
		if !ok || v <= 0 || v >= generalNumberCap {
			continue
		}
		out = append(out, CandidateAmount{Value: v, Text: text, Offset: idx[0]})
	}
	return out
}

// selectAmount picks the transaction amount from the candidates.
//
// Lines with an explicit DEPOSIT/WITHDRAWAL column marker list the
// transaction amount first and the (usually larger) running balance last,
// so candidates are taken in line order. Everywhere else the largest
// plausible value wins.
func selectAmount(line string, cands []CandidateAmount) (CandidateAmount, bool) {
	if len(cands) == 0 {
		return CandidateAmount{}, false
	}

	sorted := make([]CandidateAmount, len(cands))
	copy(sorted, cands)

	if len(sorted) >= 2 && reDirectional.MatchString(line) {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	} else {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
	}

	for _, c := range sorted {
		if plausibleAmount(c.Value) {
			return c, true
		}
	}
	return CandidateAmount{}, false
}
