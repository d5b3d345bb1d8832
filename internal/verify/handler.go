package verify

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ahwlsqja/paygate-verifier/internal/common/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for payment verification
type Handler struct {
	service      *Service
	maxBodyBytes int64
	now          func() time.Time
	logger       *zap.Logger
}

// NewHandler creates a new verification handler.
// Request bodies larger than maxBodyBytes are rejected with 413.
func NewHandler(service *Service, maxBodyBytes int64, logger *zap.Logger) *Handler {
	return &Handler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
		now:          time.Now,
		logger:       logger,
	}
}

// WithClock replaces the wall clock, read once per request
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// RegisterRoutes registers verification routes on the router group
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/verify", middleware.BodyLimit(h.maxBodyBytes, h.rejectOversized), h.Verify)
}

// Verify godoc
// @Summary Verify a payment signature
// @Description Checks the timestamp window of an EIP-712 Payment authorization and recovers its signer.
// @Description Timestamp and recovery rejections return 200 with isValid=false; the caller compares
// @Description recoveredAddress with the expected signer.
// @Tags verify
// @Accept json
// @Produce json
// @Param X-Correlation-ID header string false "Echoed back, or \"unknown\" when absent"
// @Param request body VerifyRequest true "Payment context and signature"
// @Success 200 {object} VerifyResponse "Verification result, valid or rejected by policy"
// @Failure 400 {object} VerifyResponse "Malformed JSON, bad signature hex or typed data error"
// @Failure 413 {object} VerifyResponse "Request body too large"
// @Failure 500 {object} VerifyResponse "System clock unavailable"
// @Header 200,400,413,500 {string} X-Correlation-ID "Correlation ID"
// @Router /verify [post]
func (h *Handler) Verify(c *gin.Context) {
	if c.ContentType() != binding.MIMEJSON {
		h.respond(c, http.StatusBadRequest, Invalid("Invalid request: Expected request with `Content-Type: application/json`"))
		return
	}

	// Read the whole body so the size limit applies to all of it, not just
	// the prefix a decoder happens to consume.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			h.rejectOversized(c, maxErr.Limit)
			return
		}
		h.respond(c, http.StatusBadRequest, Invalid(fmt.Sprintf("Invalid request: %v", err)))
		return
	}

	req, err := decodeVerifyRequest(body)
	if err != nil {
		h.respond(c, http.StatusBadRequest, Invalid(fmt.Sprintf("Invalid request: %v", err)))
		return
	}

	now := h.now()
	result, appErr := h.service.Verify(req, now)
	if appErr != nil {
		_ = c.Error(appErr)
		h.logOutcome(c, req, appErr.StatusCode, appErr.Message)
		h.respond(c, appErr.StatusCode, Invalid(appErr.Message))
		return
	}

	reason := ""
	if result.Error != nil {
		reason = *result.Error
	}
	h.logOutcome(c, req, http.StatusOK, reason)
	h.respond(c, http.StatusOK, result)
}

func (h *Handler) rejectOversized(c *gin.Context, limit int64) {
	h.respond(c, http.StatusRequestEntityTooLarge, Invalid(fmt.Sprintf("Request body too large (max %d bytes)", limit)))
}

func (h *Handler) respond(c *gin.Context, status int, body *VerifyResponse) {
	c.AbortWithStatusJSON(status, body)
}

func (h *Handler) logOutcome(c *gin.Context, req *VerifyRequest, status int, reason string) {
	fields := []zap.Field{
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
		zap.String("nonce", deref(req.Context.Nonce)),
		zap.Uint64("chain_id", derefUint(req.Context.ChainID)),
		zap.Int("status", status),
		zap.Bool("valid", status == http.StatusOK && reason == ""),
	}
	if reason != "" {
		fields = append(fields, zap.String("reason", reason))
	}
	h.logger.Info("payment verification", fields...)
}
