// Package tradition implements the Ayurvedic and TCM property parsers.
// Each parser evaluates an ordered table of pattern rules against a text
// window around a herb mention. List-valued fields accumulate ordered-unique
// values across rule hits; scalar fields keep the first match.
package tradition

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// accumulation describes how repeated rule hits combine into a field.
type accumulation int

const (
	appendUnique accumulation = iota // ordered-unique list growth
	firstWins                        // scalar, later matches ignored
)

var (
	listSep    = regexp.MustCompile(`(?i)\s*(?:,|;|\band\b|&)\s*`)
	titleCaser = cases.Title(language.English)
)

// splitValues breaks a comma/"and"-separated label value into trimmed parts.
func splitValues(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".;:")
	var out []string
	for _, p := range listSep.Split(s, -1) {
		p = strings.TrimSpace(strings.Trim(p, ".;:"))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// appendIfNew appends v to list unless an equal value (case-insensitive) is
// already present.
func appendIfNew(list []string, v string) []string {
	for _, have := range list {
		if strings.EqualFold(have, v) {
			return list
		}
	}
	return append(list, v)
}

// canonicalTerm returns the vocabulary spelling for v, or "" when v is not
// in the vocabulary. Comparison is case-insensitive.
func canonicalTerm(vocab []string, v string) string {
	v = strings.TrimSpace(v)
	for _, term := range vocab {
		if strings.EqualFold(term, v) {
			return term
		}
	}
	return ""
}

func title(s string) string {
	return titleCaser.String(strings.ToLower(s))
}
