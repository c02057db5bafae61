package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard returns today's summary statistics (admin).
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"stats": stats})
}
