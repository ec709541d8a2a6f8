package server

import (
	"time"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/utils"
	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the Gin router with the configured API handlers.
func NewRouter(cfg *config.Config, validator Validator) *gin.Engine {
	router := gin.New()

	// Access log and panic recovery through zap, RFC3339 timestamps in UTC.
	router.Use(ginzap.Ginzap(utils.Logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(utils.Logger, true))
	router.Use(requestIDMiddleware())
	// promhttp compresses on its own.
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{MetricsEndpoint})))

	handler := newHandler(cfg, validator)

	router.GET(HealthEndpoint, handler.health)
	router.GET(MetricsEndpoint, gin.WrapH(promhttp.Handler()))
	router.POST(ValidationEndpoint, authMiddleware(cfg.APIToken), handler.validate)

	return router
}
