// Package normalizer cleans merchant names out of bank narrations.
// Narrations bury the merchant under payment-rail prefixes and reference
// numbers ("UPI-SWIGGY BANGALORE 4532"); the sanitizer strips the noise
// and, where possible, resolves a canonical merchant name.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MerchantInfo is the result of sanitizing one narration.
type MerchantInfo struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	Canonical  string `json:"canonical,omitempty"`
}

// Sanitizer normalizes merchant names and resolves them against a
// canonical merchant list.
type Sanitizer struct {
	canonical []string
}

// NewSanitizer returns a sanitizer preloaded with merchants that show up
// constantly in Indian statements.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{canonical: defaultCanonicalMerchants()}
}

// AddCanonical registers an extra canonical merchant name.
func (s *Sanitizer) AddCanonical(name string) {
	name = strings.TrimSpace(name)
	if name != "" {
		s.canonical = append(s.canonical, name)
	}
}

// Sanitize cleans the narration and resolves a canonical merchant when
// one matches.
func (s *Sanitizer) Sanitize(raw string) MerchantInfo {
	cleaned := cleanNarration(raw)

	info := MerchantInfo{
		Original:   raw,
		Normalized: titleCase(cleaned),
	}
	if canonical, ok := s.resolve(cleaned); ok {
		info.Canonical = canonical
		info.Normalized = canonical
	}
	return info
}

const (
	// Fuzzy resolution only considers tokens long enough to be merchant
	// names and edits small enough to be OCR slips. Four-letter tokens
	// ("MART") sit one edit away from too many real merchants.
	minFuzzyTokenLen = 5
	maxFuzzyDistance = 2
)

// resolve matches the cleaned narration against the canonical list:
// substring containment first, then per-token fuzzy matching to absorb
// OCR misreads like "SWIGY".
func (s *Sanitizer) resolve(cleaned string) (string, bool) {
	upper := strings.ToUpper(cleaned)
	for _, c := range s.canonical {
		if strings.Contains(upper, strings.ToUpper(c)) {
			return c, true
		}
	}

	best := ""
	bestDist := maxFuzzyDistance + 1
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < minFuzzyTokenLen {
			continue
		}
		for _, c := range s.canonical {
			d := fuzzy.RankMatchNormalizedFold(tok, c)
			if d >= 0 && d < bestDist {
				best = c
				bestDist = d
			}
		}
	}
	return best, best != ""
}

// Payment-rail prefixes that precede the merchant in narrations.
var railPrefixes = []string{
	"UPI-", "UPI/", "UPI ",
	"POS ", "POS/",
	"NEFT-", "NEFT/", "NEFT ",
	"IMPS-", "IMPS/", "IMPS ",
	"RTGS-", "RTGS/",
	"ACH/", "ACH-",
	"ATM-", "ATM/", "ATW-",
	"BIL/", "VPS/",
}

var (
	reRefNumber     = regexp.MustCompile(`\s+\d{4,}$`)
	reTrailingDate  = regexp.MustCompile(`\s+\d{1,2}/\d{1,2}/?$`)
	reMultipleSpace = regexp.MustCompile(`\s+`)
)

func cleanNarration(raw string) string {
	result := strings.TrimSpace(raw)

	upper := strings.ToUpper(result)
	for _, prefix := range railPrefixes {
		if strings.HasPrefix(upper, prefix) {
			result = result[len(prefix):]
			break
		}
	}

	result = reRefNumber.ReplaceAllString(result, "")
	result = reTrailingDate.ReplaceAllString(result, "")
	result = reMultipleSpace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(string(word[0])) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

func defaultCanonicalMerchants() []string {
	return []string{
		// Food delivery and dining
		"Swiggy", "Zomato", "Dominos", "McDonalds", "KFC", "Starbucks",
		// Transport
		"Uber", "Ola", "Rapido", "IRCTC", "RedBus", "IndiGo",
		// Shopping
		"Amazon", "Flipkart", "Myntra", "BigBasket", "Blinkit", "DMart",
		"Reliance Retail",
		// Entertainment
		"Netflix", "Hotstar", "Spotify", "BookMyShow",
		// Utilities and telecom
		"Airtel", "Jio", "Vodafone Idea", "Tata Power", "BESCOM",
		// Payments and finance
		"Paytm", "PhonePe", "Google Pay", "CRED", "LIC", "Zerodha",
	}
}
