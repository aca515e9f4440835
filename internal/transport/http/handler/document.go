package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "reportshelf/internal/app"
	"reportshelf/internal/model"
	"reportshelf/internal/transport/http/response"
)

type DocumentHandler struct {
	library *appsvc.LibraryService
}

func NewDocumentHandler(library *appsvc.LibraryService) *DocumentHandler {
	return &DocumentHandler{library: library}
}

// Fetch serves the original PDF bytes for one folder+filename pair.
// Traversal attempts surface as not-found, indistinguishable from a
// file that does not exist.
func (h *DocumentHandler) Fetch(c *gin.Context) {
	folder := c.Param("folder")
	filename := c.Param("filename")

	data, err := h.library.DocumentBytes(folder, filename)
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

type documentInfoResponse struct {
	model.Document
	PageCount   int    `json:"page_count"`
	TextContent string `json:"text_content"`
}

// Info returns one document's metadata plus its extracted text.
func (h *DocumentHandler) Info(c *gin.Context) {
	doc, err := h.library.DocumentInfo(c.Request.Context(), c.Param("folder"), c.Param("filename"))
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	response.OK(c, documentInfoResponse{
		Document:    doc,
		PageCount:   len(doc.Pages),
		TextContent: doc.Text(),
	})
}

func respondDocumentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appsvc.ErrPathOutsideRoot), errors.Is(err, appsvc.ErrDocumentNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "document not found")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer,
			"fetch document failed")
	}
}
