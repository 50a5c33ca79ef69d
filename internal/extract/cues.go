package extract

import (
	"regexp"
	"strings"
)

// Cue-phrase rules for the tradition-independent text lists. Each captured
// value is trimmed, length-capped at a word boundary, and appended
// ordered-unique to its list.
const (
	maxCueLen = 200
	minCueLen = 4
)

var usePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bused\s+for\s+(.+?)(?:\.|;|,\s+and\s+|\n)`),
	regexp.MustCompile(`(?i)\btraditional\s+uses?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bmedicinal\s+uses?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\btherapeutic\s+actions?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bindications?\s*:?\s*(.+?)(?:\.|;|\n)`),
}

var interactionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\binteracts?\s+with\s+(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\binteractions?\s+with\s+(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bdrug\s+interactions?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bcontraindicated\s+with\s+(.+?)(?:\.|;|\n)`),
}

var contraindicationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcontraindicated\s+in\s+(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bcontraindications?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bwarnings?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bcautions?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bavoid\s+(.+?)(?:\.|;|\n)`),
}

var preparationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpreparations?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\bdosages?\s*:?\s*(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\badministered\s+as\s+(.+?)(?:\.|;|\n)`),
	regexp.MustCompile(`(?i)\btaken\s+as\s+(.+?)(?:\.|;|\n)`),
}

// harvest applies a cue pattern set to the window and appends cleaned
// captures to list, keeping first-seen order without duplicates.
func harvest(list []string, patterns []*regexp.Regexp, window string) []string {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(window, -1) {
			v := truncateAtWord(strings.TrimSpace(m[1]), maxCueLen)
			if len(v) < minCueLen {
				continue
			}
			list = appendUnique(list, v)
		}
	}
	return list
}

// truncateAtWord caps s at max bytes without breaking the last word.
func truncateAtWord(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut
}

func appendUnique(list []string, v string) []string {
	for _, have := range list {
		if strings.EqualFold(have, v) {
			return list
		}
	}
	return append(list, v)
}
