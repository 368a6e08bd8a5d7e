package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes: validation 400,
// not found 404, anything else 500 with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Info("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.Message(err)})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
