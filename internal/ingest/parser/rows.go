package parser

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
)

// Field names a logical transaction column in a tabular source.
type Field string

const (
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldDebit       Field = "debit"
	FieldCredit      Field = "credit"
	FieldAmount      Field = "amount"
	FieldBalance     Field = "balance"
)

// ColumnMap maps logical fields to the actual header strings found in a
// tabular source. Built once per document and never mutated afterwards.
type ColumnMap map[Field]string

// Row is a single tabular record keyed by normalized (trimmed,
// lower-cased) header name.
type Row map[string]string

// Header synonym tables: per field, the substrings that identify a column,
// most specific first. Different banks name the same column differently.
var fieldSynonyms = []struct {
	field    Field
	synonyms []string
}{
	{FieldDate, []string{"date", "transaction date", "txn date", "value date", "posting date", "trans date"}},
	{FieldDescription, []string{"description", "particulars", "narration", "transaction details", "details", "remarks", "transaction description"}},
	{FieldDebit, []string{"debit", "withdrawal", "debit amount", "withdrawal amount", "dr", "amount debited"}},
	{FieldCredit, []string{"credit", "deposit", "credit amount", "deposit amount", "cr", "amount credited"}},
	{FieldAmount, []string{"amount", "transaction amount", "txn amount"}},
	{FieldBalance, []string{"balance", "closing balance", "available balance"}},
}

// NormalizeHeader trims and lower-cases a header for row keying.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// ResolveColumns scans the headers in file order and maps each logical
// field to the first header containing one of its synonyms. Unmatched
// fields are simply absent from the map.
func ResolveColumns(headers []string) ColumnMap {
	m := make(ColumnMap, len(fieldSynonyms))
	for _, fs := range fieldSynonyms {
		for _, syn := range fs.synonyms {
			found := ""
			for _, h := range headers {
				if strings.Contains(NormalizeHeader(h), syn) {
					found = h
					break
				}
			}
			if found != "" {
				m[fs.field] = found
				break
			}
		}
	}
	return m
}

func (m ColumnMap) get(row Row, f Field) string {
	h, ok := m[f]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[NormalizeHeader(h)])
}

// Rows converts already-tabular rows into transactions using a resolved
// column map. Bad rows are logged and skipped; the document as a whole
// never fails because of them.
type Rows struct {
	classifier *classifier.Classifier
	logger     *slog.Logger
}

func NewRows(c *classifier.Classifier, logger *slog.Logger) *Rows {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rows{classifier: c, logger: logger}
}

var (
	// Keyword hints for a single signed amount column whose sign is
	// positive: the narration decides the direction, income by default.
	reCreditHint = regexp.MustCompile(`(?i)cr|credit|deposit|salary|credited|received`)
	reDebitHint  = regexp.MustCompile(`(?i)dr|debit|withdrawal|debited|withdrawn|payment|purchase`)

	// reAmountNoise strips currency decorations from tabular amounts.
	reAmountNoise = regexp.MustCompile(`[,₹Rs\s]`)
)

// Parse converts rows into transactions. now anchors the date
// plausibility window.
func (r *Rows) Parse(headers []string, rows []Row, now time.Time) ([]Transaction, ColumnMap) {
	columns := ResolveColumns(headers)
	var txs []Transaction

	for i, row := range rows {
		tx, ok := r.parseRow(columns, row, now)
		if !ok {
			r.logger.Debug("skipping unparseable row", "row", i+1)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, columns
}

func (r *Rows) parseRow(columns ColumnMap, row Row, now time.Time) (Transaction, bool) {
	dateStr := columns.get(row, FieldDate)
	if dateStr == "" {
		return Transaction{}, false
	}
	date, ok := parseRowDate(dateStr)
	if !ok || !withinDateWindow(date, now) {
		return Transaction{}, false
	}

	desc := columns.get(row, FieldDescription)

	var amount float64
	var typ classifier.Type

	_, hasDebit := columns[FieldDebit]
	_, hasCredit := columns[FieldCredit]

	switch {
	case hasDebit && hasCredit:
		// Split columns: a non-empty credit wins, then a non-empty debit.
		if v := columns.get(row, FieldCredit); v != "" {
			amount, ok = parseRowAmount(v)
			typ = classifier.TypeIncome
		} else if v := columns.get(row, FieldDebit); v != "" {
			amount, ok = parseRowAmount(v)
			typ = classifier.TypeExpense
		} else {
			return Transaction{}, false
		}
		if !ok {
			return Transaction{}, false
		}
	case columns[FieldAmount] != "":
		v := columns.get(row, FieldAmount)
		if v == "" {
			return Transaction{}, false
		}
		amount, ok = parseRowAmount(v)
		if !ok {
			return Transaction{}, false
		}
		if amount < 0 {
			amount = -amount
			typ = classifier.TypeExpense
		} else {
			switch {
			case reCreditHint.MatchString(desc):
				typ = classifier.TypeIncome
			case reDebitHint.MatchString(desc):
				typ = classifier.TypeExpense
			default:
				typ = classifier.TypeIncome
			}
		}
	default:
		return Transaction{}, false
	}

	if amount <= 0 {
		return Transaction{}, false
	}

	if desc == "" {
		desc = defaultDescription
	}
	desc = strings.TrimSpace(truncate(desc, maxDescriptionLen))

	return Transaction{
		Date:        date,
		Amount:      amount,
		Description: desc,
		Type:        typ,
		Category:    r.classifier.Categorize(desc, typ),
		RawLine:     desc,
	}, true
}

var (
	reRowDMY = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})$`)
	reRowISO = regexp.MustCompile(`^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})$`)
)

// parseRowDate parses a tabular date cell. Two-digit years in exported
// CSVs are always this century, unlike OCR text where the 50-year pivot
// applies.
func parseRowDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if m := reRowDMY.FindStringSubmatch(s); m != nil {
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return makeDate(year, time.Month(atoi(m[2])), atoi(m[1]))
	}
	if m := reRowISO.FindStringSubmatch(s); m != nil {
		return parseISO(m)
	}
	// Named-month cells like "15 Jan 2024" or "1-Dec-25".
	if _, t, ok := extractDate(s, dateShapes[2:]); ok {
		return t, true
	}
	return time.Time{}, false
}

func parseRowAmount(s string) (float64, bool) {
	s = reAmountNoise.ReplaceAllString(s, "")
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	v, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}
