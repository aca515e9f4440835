package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "reportshelf/internal/app"
	"reportshelf/internal/scanner"
	"reportshelf/internal/transport/http/response"
)

type LibraryHandler struct {
	library *appsvc.LibraryService
}

func NewLibraryHandler(library *appsvc.LibraryService) *LibraryHandler {
	return &LibraryHandler{library: library}
}

// ListFolders returns every folder with its (optionally time-filtered)
// documents.
func (h *LibraryHandler) ListFolders(c *gin.Context) {
	cutoff, ok := parseCutoff(c)
	if !ok {
		return
	}

	folders, err := h.library.ListFolders(c.Request.Context(), cutoff)
	if err != nil {
		respondScanError(c, err)
		return
	}
	response.OK(c, folders)
}

// respondScanError maps scan failures onto the response envelope.
// Root misconfiguration is the only fatal case; everything per-folder
// or per-document was already absorbed inside the scan.
func respondScanError(c *gin.Context, err error) {
	if errors.Is(err, scanner.ErrRootMissing) {
		response.Error(c, http.StatusServiceUnavailable, response.CodeRootUnavailable,
			"library root is not available")
		return
	}
	response.Error(c, http.StatusInternalServerError, response.CodeInternalServer,
		"scan failed")
}
