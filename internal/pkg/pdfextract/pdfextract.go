// Package pdfextract turns raw PDF bytes into per-page plain text.
// Extraction degrades instead of failing: a corrupt or unreadable file
// yields an empty page list so that one bad document cannot break a
// whole folder scan.
package pdfextract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

const (
	// maxPages caps how many pages are processed per document.
	maxPages = 200
	// maxPageBytes caps the text kept per page.
	maxPageBytes = 128 * 1024
)

// ExtractPages extracts plain text from a PDF, one string per page.
// Image-only pages come back as empty strings, which keeps the page
// count intact. Malformed input that neither parser can open returns
// an empty slice. Never returns nil and never panics.
func ExtractPages(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}
	if pages, err := extractWithReader(data); err == nil {
		return pages
	}
	pages, err := extractContentStreams(data)
	if err != nil {
		return []string{}
	}
	return pages
}

// extractWithReader is the primary path: a well-formed PDF with a text
// layer. The pdf library panics on some malformed inputs, so the call
// is guarded.
func extractWithReader(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf failed: %w", err)
	}

	n := reader.NumPage()
	if n > maxPages {
		n = maxPages
	}
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, pageText(reader, i))
	}
	return pages, nil
}

func pageText(reader *pdf.Reader, num int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}
	out, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	if len(out) > maxPageBytes {
		out = out[:maxPageBytes]
	}
	return out
}
