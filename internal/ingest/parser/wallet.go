package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

// Wallet parses payment-app exports laid out as a day header line
// ("01Dec, 2025") followed by directional transaction lines ("Paid to X",
// "Received from Y"). The day carried between lines is a fold accumulator
// local to each Parse call, so the strategy stays pure under concurrent
// documents.
type Wallet struct {
	classifier *classifier.Classifier
}

func NewWallet(c *classifier.Classifier) *Wallet {
	return &Wallet{classifier: c}
}

func (w *Wallet) Name() string { return "wallet" }

const (
	markerPaidTo       = "Paid to"
	markerReceivedFrom = "Received from"
	txnIDToken         = "UPITransactionID:"

	walletDescPrefixLen = 50
)

var (
	reWalletHeader = regexp.MustCompile(`(?i)^(\d{1,2})(` + monthAlt + `),\s*(\d{4})`)
	reWalletAmount = regexp.MustCompile(`₹([0-9][0-9,]*\.?[0-9]*)$`)

	// Description extraction passes, strict to loose. The strict pass
	// stops at the transaction-id token; the loose ones cope with OCR
	// mangling it.
	paidToPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Paid to (.+?) UPITransactionID:`),
		regexp.MustCompile(`Paid to (.+?)\s+UPI`),
		regexp.MustCompile(`Paid to ([^U]+)`),
	}
	receivedFromPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Received from (.+?) UPITransactionID:`),
		regexp.MustCompile(`Received from (.+?)\s+UPI`),
		regexp.MustCompile(`Received from ([^U]+)`),
	}
)

// HasWalletMarkers reports whether the text carries a wallet statement
// header phrase; the dispatcher uses it to route to this strategy first.
func HasWalletMarkers(text string) bool {
	return strings.Contains(text, "Google Pay") || strings.Contains(text, "Transaction statement")
}

func (w *Wallet) Parse(text string, now time.Time) []Transaction {
	var txs []Transaction

	// current is the fold accumulator: the date under which subsequent
	// transaction lines fall, zero until the first valid day header.
	var current time.Time

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := reWalletHeader.FindStringSubmatch(line); m != nil {
			current = time.Time{}
			if d, ok := parseNamedMonth(m); ok && withinDateWindow(d, now) {
				current = d
			}
			continue
		}

		if tx, ok := w.parseTransactionLine(line, current); ok {
			txs = append(txs, tx)
		}
	}
	return txs
}

func (w *Wallet) parseTransactionLine(line string, current time.Time) (Transaction, bool) {
	if current.IsZero() || !strings.Contains(line, "₹") {
		return Transaction{}, false
	}
	isIncome := strings.Contains(line, markerReceivedFrom)
	if !isIncome && !strings.Contains(line, markerPaidTo) {
		return Transaction{}, false
	}

	m := reWalletAmount.FindStringSubmatch(line)
	if m == nil {
		return Transaction{}, false
	}
	amount, ok := parseNumber(m[1])
	if !ok || amount <= 0 {
		return Transaction{}, false
	}

	typ := classifier.TypeExpense
	patterns := paidToPatterns
	if isIncome {
		typ = classifier.TypeIncome
		patterns = receivedFromPatterns
	}

	desc := ""
	for _, re := range patterns {
		if dm := re.FindStringSubmatch(line); dm != nil {
			desc = strings.TrimSpace(dm[1])
			break
		}
	}
	if desc == "" {
		// Fixed-length prefix fallback, stopping before the amount.
		end := strings.Index(line, "₹")
		if end < 0 || end > walletDescPrefixLen {
			end = min(walletDescPrefixLen, len(line))
		}
		desc = strings.TrimSpace(line[:end])
	}
	desc = truncate(desc, maxDescriptionLen)

	return Transaction{
		Date:        current,
		Amount:      amount,
		Description: desc,
		Type:        typ,
		Category:    w.classifier.Categorize(desc, typ),
		RawLine:     line,
	}, true
}
