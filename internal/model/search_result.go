package model

// SearchResult pairs a document with the matches a query produced in
// it. Matches are human-readable "label: snippet" strings ("Filename:
// Q1.pdf", "Page 3: ...context..."). MatchCount counts every
// non-overlapping occurrence, including those beyond the snippet cap,
// so it can exceed len(Matches).
type SearchResult struct {
	Document   Document `json:"document"`
	Matches    []string `json:"matches"`
	MatchCount int      `json:"match_count"`
}
