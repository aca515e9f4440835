package search

import (
	"strings"
	"unicode/utf8"
)

// Snippet cuts a bounded window of text around the match starting at
// off, with ellipsis markers on whichever sides were truncated.
// Offsets are clamped so an out-of-range pair can never slice past the
// text bounds.
func Snippet(text string, off, matchLen, radius int) string {
	if off < 0 {
		off = 0
	}
	if off > len(text) {
		off = len(text)
	}

	lo := off - radius
	if lo < 0 {
		lo = 0
	}
	hi := off + matchLen + radius
	if hi > len(text) {
		hi = len(text)
	}

	// Never split a multi-byte rune at the window edges.
	for lo < len(text) && lo > 0 && !utf8.RuneStart(text[lo]) {
		lo++
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}

	window := collapseWhitespace(text[lo:hi])
	if lo > 0 {
		window = "..." + window
	}
	if hi < len(text) {
		window = window + "..."
	}
	return window
}

// collapseWhitespace squeezes newlines, tabs and space runs into
// single spaces so snippets stay one-line.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
