package model

// Folder is one immediate subdirectory of the library root. Documents
// are ordered by filename ascending (byte-wise comparison). A folder
// whose documents were all filtered out is still listed with
// PDFCount == 0 so the caller can tell "empty" from "missing".
type Folder struct {
	Name      string     `json:"name"`
	PDFCount  int        `json:"pdf_count"`
	Documents []Document `json:"documents"`
}
