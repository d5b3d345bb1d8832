package handler

import (
	"github.com/ahwlsqja/paygate-verifier/internal/common/middleware"
	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health endpoint
const ServiceName = "verifier"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new HealthHandler reporting the given build version
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"verifier"`
	Version string `json:"version" example:"0.1.0"`
}

// RegisterRoutes registers health routes on the router group
func (h *HealthHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/health", h.Health)
}

// Health godoc
// @Summary Health check
// @Description Returns verifier liveness. The verifier has no dependencies, so this is also its readiness.
// @Tags health
// @Produce json
// @Param X-Correlation-ID header string false "Echoed back, or \"unknown\" when absent"
// @Success 200 {object} HealthResponse
// @Header 200 {string} X-Correlation-ID "Correlation ID"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	middleware.RespondOK(c, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Version: h.version,
	})
}
