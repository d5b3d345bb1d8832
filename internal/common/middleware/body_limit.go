package middleware

import (
	"net/http"

	"github.com/ahwlsqja/paygate-verifier/internal/common/errors"
	"github.com/gin-gonic/gin"
)

// OversizedHandler writes the response for a request whose body exceeds limit.
type OversizedHandler func(c *gin.Context, limit int64)

// BodyLimit caps the request body at limit bytes.
// A declared Content-Length above the limit is rejected before the body is read;
// bodies without one are wrapped in http.MaxBytesReader so reading past the limit
// fails with *http.MaxBytesError.
// onExceeded renders the early rejection; nil uses RespondError.
func BodyLimit(limit int64, onExceeded OversizedHandler) gin.HandlerFunc {
	if onExceeded == nil {
		onExceeded = func(c *gin.Context, limit int64) {
			RespondError(c, errors.PayloadTooLarge(limit))
		}
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			onExceeded(c, limit)
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
