// Package respond writes error bodies in the {"detail": "..."} shape clients expect.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sesgrg/sesg-backend/internal/logging"
)

// Detail aborts the request with status and a human readable message.
func Detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// Unauthorized aborts with 401 and a bearer challenge.
func Unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	Detail(c, http.StatusUnauthorized, msg)
}

// Validation aborts with 422 listing the offending fields.
func Validation(c *gin.Context, msg string, fields any) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": msg, "errors": fields})
}

// Internal logs err against the request and aborts with 500.
func Internal(c *gin.Context, operation string, err error) {
	logging.FromContext(c.Request.Context()).
		WithError(err).
		WithField("operation", operation).
		Error("request failed")
	Detail(c, http.StatusInternalServerError, "internal server error")
}
