package locations

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping is a liveness probe for the API.
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is working"})
}
