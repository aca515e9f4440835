package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsvc "reportshelf/internal/app"
	"reportshelf/internal/scanner"
)

func newDocumentHandler(t *testing.T) (*DocumentHandler, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	root := t.TempDir()
	sc := scanner.New(root, scanner.WithExtractor(func(data []byte) []string {
		return []string{string(data)}
	}))
	return NewDocumentHandler(appsvc.NewLibraryService(sc)), root
}

// fetchWith drives the handler directly with raw path params, which is
// the worst case: values the router would normally have normalized.
func fetchWith(h *DocumentHandler, folder, filename string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{
		{Key: "folder", Value: folder},
		{Key: "filename", Value: filename},
	}
	h.Fetch(c)
	return rec
}

func TestFetch_TraversalYieldsNotFound(t *testing.T) {
	h, root := newDocumentHandler(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "financial_reports"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "financial_reports", "Q1.pdf"), []byte("data"), 0o644))
	// A file just outside the root that traversal would reach.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(root), "secret.pdf"), []byte("secret"), 0o644))

	tests := []struct {
		name     string
		folder   string
		filename string
	}{
		{name: "dotdot folder", folder: "..", filename: "secret.pdf"},
		{name: "relative escape in filename", folder: "financial_reports", filename: "../../secret.pdf"},
		{name: "absolute filename", folder: "financial_reports", filename: "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fetchWith(h, tt.folder, tt.filename)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.NotContains(t, rec.Body.String(), "secret")
		})
	}
}

func TestFetch_ServesDocument(t *testing.T) {
	h, root := newDocumentHandler(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "financial_reports"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "financial_reports", "Q1.pdf"), []byte("pdf data"), 0o644))

	rec := fetchWith(h, "financial_reports", "Q1.pdf")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pdf data", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Q1.pdf")
}
