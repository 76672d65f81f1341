package parser

import (
	"strconv"
	"strings"
)

// dedupDescPrefixLen bounds the description part of the dedup key. Known
// limitation: two distinct same-day, same-amount transactions whose
// narrations share a 20-character prefix collapse into one. The upstream
// behaviour does not disambiguate these and neither do we.
const dedupDescPrefixLen = 20

// Dedupe collapses near-duplicate reads, keeping the first occurrence.
// OCR frequently re-reads the same printed line twice; the composite key
// (date, amount, description prefix) catches those. Dedupe is idempotent:
// applying it to its own output changes nothing.
func Dedupe(txs []Transaction) []Transaction {
	if len(txs) == 0 {
		return txs
	}
	seen := make(map[string]struct{}, len(txs))
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		key := dedupKey(tx)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tx)
	}
	return out
}

func dedupKey(tx Transaction) string {
	var b strings.Builder
	b.WriteString(tx.Date.Format("2006-01-02"))
	b.WriteByte('_')
	b.WriteString(strconv.FormatFloat(tx.Amount, 'f', -1, 64))
	b.WriteByte('_')
	b.WriteString(truncate(tx.Description, dedupDescPrefixLen))
	return b.String()
}
