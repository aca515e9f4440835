package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"reportshelf/internal/model"
	"reportshelf/internal/search"
)

// FolderScanner is the slice of the scanner the search service needs.
// Tests substitute a stub to observe whether a scan happened at all.
type FolderScanner interface {
	Scan(ctx context.Context, cutoff *time.Time) ([]model.Folder, error)
}

// SearchService answers filename/content queries over the scanned
// document set.
type SearchService struct {
	scanner       FolderScanner
	snippetRadius int
	maxSnippets   int
}

func NewSearchService(sc FolderScanner, snippetRadius, maxSnippets int) *SearchService {
	if snippetRadius <= 0 {
		snippetRadius = search.DefaultSnippetRadius
	}
	if maxSnippets <= 0 {
		maxSnippets = search.DefaultMaxSnippets
	}
	return &SearchService{
		scanner:       sc,
		snippetRadius: snippetRadius,
		maxSnippets:   maxSnippets,
	}
}

// Search scans the library and matches query case-insensitively
// against every surviving document's filename and page text. An empty
// or whitespace-only query short-circuits to an empty result without
// scanning; callers debouncing input rely on that being free.
// Results are ordered by match count descending, then filename, then
// folder, for deterministic output.
func (s *SearchService) Search(ctx context.Context, query string, cutoff *time.Time) ([]model.SearchResult, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []model.SearchResult{}, nil
	}

	folders, err := s.scanner.Scan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	results := []model.SearchResult{}
	for _, folder := range folders {
		for _, doc := range folder.Documents {
			matches, count := search.Match(doc, term, s.snippetRadius, s.maxSnippets)
			if count == 0 {
				continue
			}
			results = append(results, model.SearchResult{
				Document:   doc,
				Matches:    matches,
				MatchCount: count,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchCount != results[j].MatchCount {
			return results[i].MatchCount > results[j].MatchCount
		}
		if results[i].Document.Filename != results[j].Document.Filename {
			return results[i].Document.Filename < results[j].Document.Filename
		}
		return results[i].Document.Folder < results[j].Document.Folder
	})
	return results, nil
}
