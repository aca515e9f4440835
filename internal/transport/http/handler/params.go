package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reportshelf/internal/transport/http/response"
)

// parseCutoff reads the optional target_datetime query parameter. An
// absent parameter means no temporal filtering at all, which is
// deliberately different from "now": a missing value must never hide
// documents whose timestamps sit slightly in the future. On a
// malformed value it writes a 400 response and reports ok=false.
func parseCutoff(c *gin.Context) (cutoff *time.Time, ok bool) {
	raw := c.Query("target_datetime")
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest,
			"invalid target_datetime, expected RFC 3339")
		return nil, false
	}
	utc := parsed.UTC()
	return &utc, true
}
