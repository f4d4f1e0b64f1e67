package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "ApexFlow Server is Active",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
