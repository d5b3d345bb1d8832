package middleware

import (
	"net/http"

	"github.com/ahwlsqja/paygate-verifier/internal/common/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents the standard error response format
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains error details
type ErrorBody struct {
	Code          string         `json:"code"`
	Message       string         `json:"message"`
	RequestID     string         `json:"request_id,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// RespondError sends an error JSON response
// Handles both *errors.AppError and generic errors
func RespondError(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		// Wrap unknown errors as internal error
		appErr = errors.Internal("An unexpected error occurred").WithError(err)
	}
	_ = c.Error(appErr)

	c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{
		Error: ErrorBody{
			Code:          appErr.Code,
			Message:       appErr.Message,
			RequestID:     GetRequestID(c),
			CorrelationID: GetCorrelationID(c),
			Details:       appErr.Details,
		},
	})
}

// RespondOK sends a 200 OK response
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoRoute answers requests for unknown paths
func NoRoute(c *gin.Context) {
	RespondError(c, errors.NotFound("Route "+c.Request.URL.Path))
}

// NoMethod answers requests with a method the path does not accept
func NoMethod(c *gin.Context) {
	RespondError(c, errors.MethodNotAllowed(c.Request.Method))
}

// Recovery converts a handler panic into a 500 in the standard error format
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		RespondError(c, errors.Internal("An unexpected error occurred").
			WithDetails(map[string]any{"panic": true}))
	})
}
