// Package classifier determines the direction (income vs expense) and the
// category of a parsed transaction from its narration text. Direction is a
// keyword score, not a boolean: indicator hits, a lexicon sentiment nudge
// and the wallet marker phrases all contribute, and income wins ties.
//
// Indicator scanning uses the Aho-Corasick algorithm so every keyword table
// is matched in a single pass over the text regardless of table size.
package classifier

import (
	"regexp"
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"
)

// Type is the direction of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

const (
	indicatorWeight    = 2
	sentimentWeight    = 1
	markerWeight       = 5
	sentimentThreshold = 0.1
	substringScore     = 2
	wholeWordBonus     = 1
	markerReceivedFrom = "received from"
	markerPaidTo       = "paid to"
)

// Classifier scores narration text against the indicator and category
// keyword tables. It is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	income  *ahocorasick.Matcher
	expense *ahocorasick.Matcher

	wordRe   map[string]*regexp.Regexp
	wordReMu sync.Mutex
}

// New builds a classifier with the matchers pre-compiled from the keyword
// tables.
func New() *Classifier {
	return &Classifier{
		income:  buildMatcher(incomeIndicators),
		expense: buildMatcher(expenseIndicators),
		wordRe:  make(map[string]*regexp.Regexp),
	}
}

func buildMatcher(keywords []string) *ahocorasick.Matcher {
	patterns := make([][]byte, len(keywords))
	for i, kw := range keywords {
		patterns[i] = []byte(kw)
	}
	return ahocorasick.NewMatcher(patterns)
}

// TypeOf scores the text and returns the transaction direction.
// Each distinct indicator present counts once; occurrences don't stack.
func (c *Classifier) TypeOf(text string) Type {
	lower := strings.ToLower(text)

	incomeScore := indicatorWeight * len(c.income.Match([]byte(lower)))
	expenseScore := indicatorWeight * len(c.expense.Match([]byte(lower)))

	switch sentiment := sentimentScore(lower); {
	case sentiment > sentimentThreshold:
		incomeScore += sentimentWeight
	case sentiment < -sentimentThreshold:
		expenseScore += sentimentWeight
	}

	if strings.Contains(lower, markerReceivedFrom) {
		incomeScore += markerWeight
	} else if strings.Contains(lower, markerPaidTo) {
		expenseScore += markerWeight
	}

	if incomeScore >= expenseScore {
		return TypeIncome
	}
	return TypeExpense
}

// Categorize picks the highest-scoring category for the description.
// A keyword scores 2 for a substring hit plus 1 when it also matches as a
// whole word. No hits fall through to the type's "other" bucket.
func (c *Classifier) Categorize(description string, t Type) string {
	lower := strings.ToLower(description)

	tables := expenseCategories
	best := "other"
	if t == TypeIncome {
		tables = incomeCategories
		best = "other_income"
	}

	bestScore := 0
	for _, cat := range tables {
		score := 0
		for _, kw := range cat.Keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			score += substringScore
			if c.wholeWord(kw).MatchString(lower) {
				score += wholeWordBonus
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat.Name
		}
	}
	return best
}

// Classify runs both determinations: direction from the full raw line
// (labels like "Cr"/"NEFT" often sit outside the cleaned description) and
// category from the cleaned description.
func (c *Classifier) Classify(description, rawLine string) (Type, string) {
	t := c.TypeOf(rawLine)
	return t, c.Categorize(description, t)
}

// wholeWord returns a cached \b-anchored matcher for the keyword.
func (c *Classifier) wholeWord(keyword string) *regexp.Regexp {
	c.wordReMu.Lock()
	defer c.wordReMu.Unlock()
	re, ok := c.wordRe[keyword]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		c.wordRe[keyword] = re
	}
	return re
}
