package locations

import (
	"log"
	"net/http"

	"github.com/aryan100k/Storoo-Backend/internal/store"
	"github.com/gin-gonic/gin"
)

// List returns every storage location, unfiltered and unpaginated.
// An empty table answers 200 with an empty list, never null.
func (h *Handler) List(c *gin.Context) {
	rows, err := h.store.Locations()
	if err != nil {
		log.Printf("locations fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []store.Location{}
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Locations fetched successfully",
		"data":    rows,
	})
}
