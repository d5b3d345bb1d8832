package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"

	// maxInboundRequestID bounds an ID forwarded by a proxy in front of the verifier
	maxInboundRequestID = 128
)

// RequestID tags each request with an ID for this hop's access log and error
// bodies. An ID set by an upstream proxy is kept when it is short printable
// ASCII; anything else is replaced with a fresh UUIDv4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := inboundRequestID(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func inboundRequestID(v string) string {
	if len(v) > maxInboundRequestID || !isPrintableHeader(v) {
		return ""
	}
	return v
}

// GetRequestID returns the ID assigned by RequestID, or "" outside it
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
