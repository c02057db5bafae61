package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusattend/internal/apperr"
)

// ok writes the success envelope with extra payload fields.
func ok(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail converts any error into the failure envelope. Unclassified errors are
// logged and surface as a generic 500.
func fail(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	message := err.Error()
	if code == apperr.CodeInternal {
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		message = "internal error"
	}
	c.JSON(apperr.Status(code), gin.H{"success": false, "error": message})
}

// failBind reports a request-body binding error as a validation failure.
func failBind(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}
