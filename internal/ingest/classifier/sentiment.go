package classifier

import "strings"

// A small AFINN-style valence lexicon covering vocabulary that actually
// shows up in bank and wallet narrations. Scores follow the AFINN scale
// (-5..+5). The average token valence nudges the income/expense score by
// one point in either direction.

var valenceLexicon = map[string]int{
	"award":       3,
	"awarded":     3,
	"bonus":       2,
	"cashback":    2,
	"charged":     -1,
	"deducted":    -2,
	"declined":    -2,
	"dispute":     -2,
	"failed":      -2,
	"fee":         -1,
	"fine":        -2,
	"fraud":       -4,
	"free":        1,
	"gain":        2,
	"gift":        2,
	"growth":      2,
	"interest":    1,
	"late":        -1,
	"lost":        -3,
	"loss":        -3,
	"overdue":     -2,
	"penalty":     -2,
	"prize":       3,
	"profit":      2,
	"received":    1,
	"refund":      2,
	"reward":      2,
	"rewarded":    3,
	"scholarship": 2,
	"welcome":     2,
	"win":         4,
	"winning":     4,
	"won":         3,
}

// sentimentScore tokenizes the text and averages the valence of known
// tokens over the full token count, mirroring an AFINN analyzer.
func sentimentScore(text string) float64 {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	if len(tokens) == 0 {
		return 0
	}
	sum := 0
	for _, tok := range tokens {
		sum += valenceLexicon[tok]
	}
	return float64(sum) / float64(len(tokens))
}
