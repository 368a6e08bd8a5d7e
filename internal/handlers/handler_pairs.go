package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type pairHandler struct {
	pairService portssvc.PairSvcFacade
}

func registerPairRoutes(rg *gin.RouterGroup, pairService portssvc.PairSvcFacade) {
	h := &pairHandler{pairService: pairService}
	rg.GET("/pairs", h.listPairs)
}

// listPairs godoc
// @Summary List currencies and pairs
// @Description Returns the active currency vocabulary and the advertised pair definitions.
// @Tags pairs
// @Produce json
// @Success 200 {object} dto.PairsResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list pairs"
// @Router /pairs [get]
func (h *pairHandler) listPairs(c *gin.Context) {
	cat, err := h.pairService.ListPairs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pairs")
		return
	}
	c.JSON(http.StatusOK, dto.ToPairsResponse(cat))
}
