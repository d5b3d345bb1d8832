package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/net/http/httpguts"
)

const (
	// CorrelationIDHeader is the header name for the caller-supplied correlation ID
	CorrelationIDHeader = "X-Correlation-ID"
	// CorrelationIDKey is the context key for correlation ID
	CorrelationIDKey = "correlation_id"
	// UnknownCorrelationID is echoed when the caller did not send a usable ID
	UnknownCorrelationID = "unknown"
)

// CorrelationID middleware echoes the caller's X-Correlation-ID on every response.
// Absent or empty values, and values that are not printable ASCII, are
// replaced with "unknown".
//
// The ID is opaque: it only ends up in response headers and logs.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if !isPrintableHeader(correlationID) {
			correlationID = UnknownCorrelationID
		}

		c.Set(CorrelationIDKey, correlationID)
		// Set before c.Next so it survives early aborts
		c.Header(CorrelationIDHeader, correlationID)

		c.Next()
	}
}

// GetCorrelationID extracts correlation ID from gin context
func GetCorrelationID(c *gin.Context) string {
	if id, exists := c.Get(CorrelationIDKey); exists {
		return id.(string)
	}
	return UnknownCorrelationID
}

// isPrintableHeader reports whether v is a non-empty header value made of
// visible ASCII, spaces and tabs. httpguts alone also admits obs-text bytes.
func isPrintableHeader(v string) bool {
	if v == "" || !httpguts.ValidHeaderFieldValue(v) {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] >= 0x80 {
			return false
		}
	}
	return true
}
