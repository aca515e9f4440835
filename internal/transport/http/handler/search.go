package handler

import (
	"github.com/gin-gonic/gin"

	appsvc "reportshelf/internal/app"
	"reportshelf/internal/transport/http/response"
)

type SearchHandler struct {
	search *appsvc.SearchService
}

func NewSearchHandler(search *appsvc.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search matches q against filenames and page text. An empty or
// whitespace-only q is not an error; it returns an empty result list
// without scanning anything.
func (h *SearchHandler) Search(c *gin.Context) {
	cutoff, ok := parseCutoff(c)
	if !ok {
		return
	}

	results, err := h.search.Search(c.Request.Context(), c.Query("q"), cutoff)
	if err != nil {
		respondScanError(c, err)
		return
	}
	response.OK(c, results)
}
