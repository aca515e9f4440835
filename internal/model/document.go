package model

import "time"

// Document is a single PDF inside one library folder, rebuilt from the
// filesystem on every scan. Path and Pages are internal working state
// and never serialized; clients address a document by Folder+Filename.
type Document struct {
	Filename   string    `json:"filename"`
	Folder     string    `json:"folder"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`

	// Path is the resolved absolute location on disk.
	Path string `json:"-"`
	// Pages holds extracted text, one entry per page. Empty strings for
	// pages without a text layer, empty slice when extraction failed.
	// Never nil.
	Pages []string `json:"-"`
}

// Text joins all extracted pages into a single string.
func (d Document) Text() string {
	total := 0
	for _, p := range d.Pages {
		total += len(p) + 1
	}
	buf := make([]byte, 0, total)
	for i, p := range d.Pages {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, p...)
	}
	return string(buf)
}
