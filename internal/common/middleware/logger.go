package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessLog writes one structured line per request after the handler chain
// has run, so aborted requests are logged with their final status.
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level, msg := accessLevel(status)
		if ce := logger.Check(level, msg); ce != nil {
			ce.Write(accessLogFields(c, status, time.Since(start))...)
		}
	}
}

// accessLevel: 5xx Error, 4xx Warn, rest Info
func accessLevel(status int) (zapcore.Level, string) {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel, "server error"
	case status >= 400:
		return zapcore.WarnLevel, "client error"
	default:
		return zapcore.InfoLevel, "request completed"
	}
}

func accessLogFields(c *gin.Context, status int, latency time.Duration) []zap.Field {
	fields := make([]zap.Field, 0, 12)
	fields = append(fields,
		zap.String("request_id", GetRequestID(c)),
		zap.String("correlation_id", GetCorrelationID(c)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	// Unmatched paths have no route template
	if route := c.FullPath(); route != "" {
		fields = append(fields, zap.String("route", route))
	}
	if q := c.Request.URL.RawQuery; q != "" {
		fields = append(fields, zap.String("query", q))
	}
	fields = append(fields,
		zap.Int("status", status),
		zap.Int("bytes", c.Writer.Size()),
		zap.Duration("latency", latency),
		zap.String("client_ip", c.ClientIP()),
		zap.String("user_agent", c.Request.UserAgent()),
	)
	if len(c.Errors) > 0 {
		fields = append(fields, zap.String("errors", c.Errors.String()))
	}
	return fields
}
