package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	// swagger:route GET /health health
	//
	// Health
	//
	// Service liveness probe
	//
	// responses:
	//	200: Health
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
