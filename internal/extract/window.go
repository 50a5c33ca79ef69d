package extract

import "unicode/utf8"

// DefaultWindow is the number of bytes of context taken on each side of a
// herb mention, enough to capture a typical property sentence or paragraph.
const DefaultWindow = 500

// contextWindow returns the text surrounding [start, end), extended by
// radius bytes in both directions and clamped to the text bounds. Cut
// points are snapped outward to rune boundaries so the window is valid
// UTF-8.
func contextWindow(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return text[lo:hi]
}
