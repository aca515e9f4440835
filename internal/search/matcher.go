// Package search implements literal substring matching over indexed
// documents, with bounded context snippets and deterministic ranking.
package search

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"reportshelf/internal/model"
)

const (
	// DefaultSnippetRadius is the context kept on each side of a match.
	DefaultSnippetRadius = 80
	// DefaultMaxSnippets bounds the matches list per document. Occurrences
	// past the cap still count toward MatchCount.
	DefaultMaxSnippets = 5
)

// Occurrences returns the start offsets of non-overlapping occurrences
// of term in text. After a hit the scan resumes past the matched span,
// so "aa" occurs twice in "aaaa", not three times. Matching is exact;
// callers lowercase both sides for case-insensitive search.
func Occurrences(text, term string) []int {
	if term == "" {
		return nil
	}
	var offsets []int
	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], term)
		if i < 0 {
			break
		}
		offsets = append(offsets, pos+i)
		pos += i + len(term)
	}
	return offsets
}

// Match runs the query term against one document's filename and every
// extracted page. It returns the labeled match list (capped at
// maxSnippets entries) and the total occurrence count. A zero count
// means the document should not appear in results at all.
func Match(doc model.Document, term string, radius, maxSnippets int) ([]string, int) {
	if radius <= 0 {
		radius = DefaultSnippetRadius
	}
	if maxSnippets <= 0 {
		maxSnippets = DefaultMaxSnippets
	}
	lowerTerm := strings.ToLower(term)

	var matches []string
	count := 0

	if strings.Contains(strings.ToLower(doc.Filename), lowerTerm) {
		matches = append(matches, "Filename: "+doc.Filename)
		count++
	}

	for pageIdx, page := range doc.Pages {
		folded, backMap := foldWithOffsets(page)
		for _, off := range Occurrences(folded, lowerTerm) {
			count++
			if len(matches) >= maxSnippets {
				continue
			}
			start := backMap[off]
			end := backMap[off+len(lowerTerm)]
			snippet := Snippet(page, start, end-start, radius)
			matches = append(matches, fmt.Sprintf("Page %d: %s", pageIdx+1, snippet))
		}
	}

	return matches, count
}

// foldWithOffsets lowercases s and returns a table mapping every byte
// offset in the folded string (plus one past the end) back to the
// originating byte offset in s. Case folding can change a rune's byte
// length (U+212A KELVIN SIGN folds from three bytes to one), so match
// offsets found in the folded text cannot index the original directly.
func foldWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		lower := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lower); j++ {
			offsets = append(offsets, i)
		}
		b.WriteRune(lower)
	}
	offsets = append(offsets, len(s))
	return b.String(), offsets
}
