package server

import (
	"fmt"

	"github.com/ahwlsqja/paygate-verifier/docs"
	"github.com/ahwlsqja/paygate-verifier/internal/common/handler"
	"github.com/ahwlsqja/paygate-verifier/internal/common/middleware"
	"github.com/ahwlsqja/paygate-verifier/internal/config"
	"github.com/ahwlsqja/paygate-verifier/internal/verify"
	"github.com/ahwlsqja/paygate-verifier/pkg/eip712"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter wires middleware, handlers and API docs into a gin engine
func NewRouter(cfg *config.Config, logger *zap.Logger, version string) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middleware
	// CorrelationID runs first so even recovered panics echo the header
	router.Use(middleware.CorrelationID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))

	router.NoRoute(middleware.NoRoute)
	router.NoMethod(middleware.NoMethod)

	// Swagger
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)
	docs.SwaggerInfo.Version = version
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ============================================================================
	// Dependencies Setup
	// ============================================================================

	verifier := eip712.NewEthVerifier(eip712.Config{
		MaxAgeSeconds:  cfg.Signature.ExpirySeconds,
		MaxSkewSeconds: cfg.Signature.ClockSkewSeconds,
	}, logger)

	// ============================================================================
	// Service & Handler Setup
	// ============================================================================

	healthHandler := handler.NewHealthHandler(version)

	verifyService := verify.NewService(verifier, logger)
	verifyHandler := verify.NewHandler(verifyService, cfg.Server.MaxBodyBytes, logger)

	// ============================================================================
	// Route Registration
	// ============================================================================

	healthHandler.RegisterRoutes(router)
	verifyHandler.RegisterRoutes(router)

	return router
}
