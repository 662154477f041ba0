package ping

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Ping test
// @Description Health endpoint that answers pong
// @Tags test
// @Produce json
// @Success 200 {object} map[string]string "message: pong"
// @Router /api/ping [get]
func HandlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
