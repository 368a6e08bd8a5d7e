package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Liveness probe
// @Description Reports that the server is up. Does not touch the store.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
