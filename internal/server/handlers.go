package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/service"
	"github.com/anmicius0/assembly-validator/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler bundles request-time dependencies for the API routes.
type Handler struct {
	cfg       *config.Config
	validator Validator
}

// newHandler constructs a Handler with attached dependencies.
func newHandler(cfg *config.Config, validator Validator) *Handler {
	return &Handler{
		cfg:       cfg,
		validator: validator,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy})
}

// validate answers 200 with the result list, or 400 with a single Error
// result when the request fails a precondition.
func (h *Handler) validate(c *gin.Context) {
	logger := requestLogger(c)
	respBuilder := newResponseBuilder()

	var request config.ValidationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, respBuilder.BuildErrorResponse(
			ErrorCodeInvalidRequestBody,
			MessageInvalidRequestBody,
			err.Error(),
		))
		return
	}

	logger.Info("Validation requested", zap.String(utils.FieldPath, request.Path))

	results, err := h.validator.Validate(c.Request.Context(), request)
	if err != nil {
		var preconditionErr *service.PreconditionError
		if errors.As(err, &preconditionErr) {
			logger.Info("Validation request rejected",
				zap.String(utils.FieldPath, request.Path),
				zap.String("reason", preconditionErr.Reason))
			c.JSON(http.StatusBadRequest, respBuilder.BuildResultResponse(preconditionErr.Result))
			return
		}

		logger.Error("Validation failed",
			zap.String(utils.FieldPath, request.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, respBuilder.BuildErrorResponse(
			ErrorCodeValidationFailed,
			MessageValidationFailed,
			err.Error(),
		))
		return
	}

	logger.Info("Validation completed",
		zap.String(utils.FieldPath, request.Path),
		zap.Int("result_count", len(results)))
	c.JSON(http.StatusOK, respBuilder.BuildResultsResponse(results))
}

// authMiddleware requires `Authorization: Bearer <token>`. An empty token disables the check.
func authMiddleware(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedToken == "" {
			c.Next()
			return
		}
		authHeader := c.GetHeader("Authorization")
		expectedAuth := fmt.Sprintf("Bearer %s", expectedToken)
		if authHeader != expectedAuth {
			requestLogger(c).Warn("Unauthorized access attempt",
				zap.String(utils.FieldPath, c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": MessageInvalidToken})
			c.Abort()
			return
		}
		c.Next()
	}
}

// requestIDMiddleware echoes the caller's X-Request-ID or assigns a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

func requestLogger(c *gin.Context) *zap.Logger {
	logger := utils.WithComponent("server")
	if logger == nil {
		logger = zap.NewNop()
	}
	if requestID := c.GetString(ContextKeyRequestID); requestID != "" {
		logger = logger.With(zap.String(utils.FieldRequestID, requestID))
	}
	return logger
}
