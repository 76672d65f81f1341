package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date literal shapes seen across Indian bank statements, tried in order.
// The first shape whose regex matches the line is the only one parsed; a
// literal that then fails to parse rejects the line rather than falling
// through, matching how scanned statements are triaged.

const monthAlt = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

var (
	reNumericDMY  = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)
	reISO         = regexp.MustCompile(`(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})`)
	reDayMonName  = regexp.MustCompile(`(?i)(\d{1,2})\s+(` + monthAlt + `)\s+(\d{2,4})`)
	reOrdinal     = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)\s+(` + monthAlt + `)\s+(\d{2,4})`)
	reDashMonName = regexp.MustCompile(`(?i)(\d{1,2})[/\-](` + monthAlt + `)[/\-](\d{2,4})`)
	reCompactMon  = regexp.MustCompile(`(?i)(\d{1,2})(` + monthAlt + `),\s*(\d{2,4})`)
)

var monthsByName = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

type dateShape struct {
	re    *regexp.Regexp
	parse func(m []string) (time.Time, bool)
}

var dateShapes = []dateShape{
	{reNumericDMY, parseDayFirst},
	{reISO, parseISO},
	{reDayMonName, parseNamedMonth},
	{reOrdinal, parseNamedMonth},
	{reDashMonName, parseNamedMonth},
	{reCompactMon, parseNamedMonth},
}

// lenientDateShapes is the narrower set the last-resort strategy accepts.
var lenientDateShapes = []dateShape{
	{reNumericDMY, parseDayFirst},
	{reISO, parseISO},
}

// extractDate finds the first date literal in the line using the given
// shape list. It returns the matched literal and the parsed date; ok is
// false when no shape matches or the first matching literal is invalid.
//
// Matches butting against further digits are not date literals (the tail
// of an ISO year, an account number): those are skipped so the next shape
// gets its chance.
func extractDate(line string, shapes []dateShape) (literal string, t time.Time, ok bool) {
	for _, shape := range shapes {
		for _, idx := range shape.re.FindAllStringSubmatchIndex(line, -1) {
			if digitAdjacent(line, idx[0], idx[1]) {
				continue
			}
			m := make([]string, 0, len(idx)/2)
			for g := 0; g < len(idx); g += 2 {
				if idx[g] < 0 {
					m = append(m, "")
					continue
				}
				m = append(m, line[idx[g]:idx[g+1]])
			}
			t, ok = shape.parse(m)
			return m[0], t, ok
		}
	}
	return "", time.Time{}, false
}

func digitAdjacent(s string, start, end int) bool {
	if start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		return true
	}
	return end < len(s) && s[end] >= '0' && s[end] <= '9'
}

func parseDayFirst(m []string) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := expandYear(atoi(m[3]))
	return makeDate(year, time.Month(month), day)
}

func parseISO(m []string) (time.Time, bool) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return makeDate(year, time.Month(month), day)
}

func parseNamedMonth(m []string) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, ok := monthsByName[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, false
	}
	year := expandYear(atoi(m[3]))
	return makeDate(year, month, day)
}

// expandYear widens two-digit years around a 50-year pivot: 25 becomes
// 2025, 87 becomes 1987.
func expandYear(y int) int {
	if y >= 100 {
		return y
	}
	if y < 50 {
		return y + 2000
	}
	return y + 1900
}

// makeDate builds a UTC midnight date and rejects literals that only look
// like dates (month 13, day 32): time.Date would silently roll them over.
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
