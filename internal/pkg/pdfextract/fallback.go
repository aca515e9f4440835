package pdfextract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// extractContentStreams recovers text from PDFs the primary reader
// cannot open. pdfcpu dumps raw per-page content streams to a temp
// directory; the string literals inside them are the visible text.
// Lossier than real text extraction, but a salvaged page beats an
// empty result for search purposes.
func extractContentStreams(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("pdfcpu panic: %v", r)
		}
	}()

	tmpDir, err := os.MkdirTemp("", "reportshelf_pdf_*")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	src := filepath.Join(tmpDir, "in.pdf")
	if err := os.WriteFile(src, data, 0o600); err != nil {
		return nil, fmt.Errorf("write temp pdf: %w", err)
	}
	outDir := filepath.Join(tmpDir, "content")
	if err := os.MkdirAll(outDir, 0o700); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	if err := api.ExtractContentFile(src, outDir, nil, nil); err != nil {
		return nil, fmt.Errorf("pdfcpu extract content: %w", err)
	}

	ents, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	sort.Slice(ents, func(i, j int) bool {
		return contentFileLess(ents[i].Name(), ents[j].Name())
	})

	pages = []string{}
	for _, ent := range ents {
		if ent.IsDir() || len(pages) >= maxPages {
			continue
		}
		raw, _ := os.ReadFile(filepath.Join(outDir, ent.Name()))
		txt := normalizeText(parseStringLiterals(string(raw), maxPageBytes))
		if len(txt) > maxPageBytes {
			txt = txt[:maxPageBytes]
		}
		pages = append(pages, txt)
	}
	return pages, nil
}

// contentFileLess orders dumped content files by their numeric page
// component, so page 10 sorts after page 2 instead of after page 1.
// Names without a number fall back to plain string comparison.
func contentFileLess(a, b string) bool {
	na, aok := pageNumber(a)
	nb, bok := pageNumber(b)
	if aok && bok && na != nb {
		return na < nb
	}
	return a < b
}

// pageNumber extracts the trailing integer from a content file name,
// ignoring the extension ("Content_page_12.txt" yields 12).
func pageNumber(name string) (int, bool) {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	end := len(name)
	for end > 0 && !isDigit(name[end-1]) {
		end--
	}
	start := end
	for start > 0 && isDigit(name[start-1]) {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.Atoi(name[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseStringLiterals collects text within balanced parentheses from a
// PDF content stream, honoring backslash escapes, and caps the output
// size.
func parseStringLiterals(s string, maxOut int) string {
	var out strings.Builder
	depth := 0
	escape := false
	in := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !in {
			if c == '(' {
				in = true
				depth = 1
			}
			continue
		}
		if escape {
			out.WriteByte(c)
			escape = false
			if out.Len() >= maxOut {
				return out.String()
			}
			continue
		}
		switch c {
		case '\\':
			escape = true
		case '(':
			depth++
			out.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				in = false
				out.WriteByte(' ')
			} else {
				out.WriteByte(c)
			}
		default:
			out.WriteByte(c)
		}
		if out.Len() >= maxOut {
			return out.String()
		}
	}
	return out.String()
}

// normalizeText collapses non-printable runes to spaces and squeezes
// whitespace runs down to single spaces.
func normalizeText(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}
