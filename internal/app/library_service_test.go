package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportshelf/internal/scanner"
)

func newTestLibrary(t *testing.T) (*LibraryService, string) {
	t.Helper()
	root := t.TempDir()
	sc := scanner.New(root, scanner.WithExtractor(func(data []byte) []string {
		return []string{string(data)}
	}))
	return NewLibraryService(sc), root
}

func seedPDF(t *testing.T, root, folder, name, content string) {
	t.Helper()
	dir := filepath.Join(root, folder)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDocumentBytes(t *testing.T) {
	svc, root := newTestLibrary(t)
	seedPDF(t, root, "financial_reports", "Q1.pdf", "%PDF-1.4 fake body")

	data, err := svc.DocumentBytes("financial_reports", "Q1.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake body"), data)
}

func TestDocumentBytes_NotFound(t *testing.T) {
	svc, root := newTestLibrary(t)
	seedPDF(t, root, "financial_reports", "Q1.pdf", "body")

	_, err := svc.DocumentBytes("financial_reports", "missing.pdf")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = svc.DocumentBytes("no_such_folder", "Q1.pdf")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentBytes_PathTraversalRejected(t *testing.T) {
	svc, root := newTestLibrary(t)
	seedPDF(t, root, "financial_reports", "Q1.pdf", "body")

	tests := []struct {
		name     string
		folder   string
		filename string
	}{
		{name: "dotdot folder", folder: "..", filename: "x.pdf"},
		{name: "dotdot filename", folder: "financial_reports", filename: "../../etc/passwd"},
		{name: "absolute filename", folder: "financial_reports", filename: "/etc/passwd"},
		{name: "separator inside folder", folder: "a/b", filename: "x.pdf"},
		{name: "backslash separator", folder: `a\b`, filename: "x.pdf"},
		{name: "empty folder", folder: "", filename: "x.pdf"},
		{name: "dot folder", folder: ".", filename: "x.pdf"},
		{name: "dotdot disguised filename", folder: "financial_reports", filename: "..\\..\\secrets.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := svc.DocumentBytes(tt.folder, tt.filename)
			require.Error(t, err)
			assert.Nil(t, data, "traversal must never yield bytes")
		})
	}
}

func TestDocumentBytes_NonPDFRejected(t *testing.T) {
	svc, root := newTestLibrary(t)
	seedPDF(t, root, "financial_reports", "notes.txt", "secret")

	_, err := svc.DocumentBytes("financial_reports", "notes.txt")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentInfo(t *testing.T) {
	svc, root := newTestLibrary(t)
	seedPDF(t, root, "financial_reports", "Q1.pdf", "Revenue grew 10%")

	docInfo, err := svc.DocumentInfo(context.Background(), "financial_reports", "Q1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Q1.pdf", docInfo.Filename)
	assert.Equal(t, "financial_reports", docInfo.Folder)
	assert.Equal(t, []string{"Revenue grew 10%"}, docInfo.Pages)
	assert.Equal(t, "Revenue grew 10%", docInfo.Text())

	_, err = svc.DocumentInfo(context.Background(), "..", "Q1.pdf")
	assert.ErrorIs(t, err, ErrPathOutsideRoot)
}

func TestListFolders(t *testing.T) {
	svc, root := newTestLibrary(t)
	seedPDF(t, root, "financial_reports", "Q1.pdf", "Revenue grew 10%")

	folders, err := svc.ListFolders(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, 1, folders[0].PDFCount)
}

func TestListFolders_RootMissing(t *testing.T) {
	sc := scanner.New(filepath.Join(t.TempDir(), "gone"))
	svc := NewLibraryService(sc)

	_, err := svc.ListFolders(context.Background(), nil)
	assert.ErrorIs(t, err, scanner.ErrRootMissing)
}
