package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Upload stores a multipart attachment and returns its public URL. Returns
// 503 when no attachment storage is configured.
func (h *Handler) Upload(c *gin.Context) {
	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "attachment storage not configured"})
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file field required"})
		return
	}
	defer file.Close()

	url, err := h.uploads.Upload(c.Request.Context(), file, header.Filename)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"url": url})
}
