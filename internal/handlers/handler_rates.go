package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for rate history and predictions.
type rateHandler struct {
	queryService portssvc.QuerySvcFacade
}

func newRateHandler(qs portssvc.QuerySvcFacade) *rateHandler {
	return &rateHandler{queryService: qs}
}

// registerRateRoutes registers the history and predict routes.
func registerRateRoutes(rg *gin.RouterGroup, queryService portssvc.QuerySvcFacade) {
	h := newRateHandler(queryService)
	rg.GET("/history", h.getHistory)
	rg.GET("/predict", h.getPredict)
}

// getHistory godoc
// @Summary Rate history for a pair
// @Description Returns the daily rates of a pair within [start, end], ascending by date. The range may span at most 3660 days.
// @Tags rates
// @Produce json
// @Param pair query string true "Currency pair, e.g. USD_KRW"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed, inverted or too long range"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve history"
// @Router /history [get]
func (h *rateHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind history query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "pair is required"})
		return
	}

	hist, err := h.queryService.GetHistory(c.Request.Context(), q.Pair, q.Start, q.End)
	if err != nil {
		respondError(c, err, "Failed to retrieve history")
		return
	}

	logger.Debug("History served", slog.String("pair", q.Pair), slog.Int("points", len(hist.Data)))
	c.JSON(http.StatusOK, dto.ToHistoryResponse(hist))
}

// getPredict godoc
// @Summary Forward projection for a pair
// @Description Returns horizon daily values starting tomorrow (UTC).
// @Tags rates
// @Produce json
// @Param pair query string true "Currency pair, e.g. USD_KRW"
// @Param horizon query int false "Number of days to project (1-60)" default(7)
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse "Horizon out of range"
// @Failure 404 {object} dto.ErrorResponse "No history for pair"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute prediction"
// @Router /predict [get]
func (h *rateHandler) getPredict(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.PredictQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind predict query", slog.String("error", err.Error()))
		msg := "horizon must be an integer between 1 and 60"
		if c.Query("pair") == "" {
			msg = "pair is required"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	pred, err := h.queryService.Predict(c.Request.Context(), q.Pair, q.Horizon)
	if err != nil {
		respondError(c, err, "Failed to compute prediction")
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(pred))
}
