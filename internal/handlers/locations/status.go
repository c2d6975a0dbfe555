package locations

import (
	"errors"
	"log"
	"net/http"

	"github.com/aryan100k/Storoo-Backend/internal/store"
	"github.com/gin-gonic/gin"
)

// Status returns a single booking by id, with its user and location rows
// embedded by the store. The id is opaque and not validated before querying.
func (h *Handler) Status(c *gin.Context) {
	id := c.Param("bookingId")

	rec, err := h.store.BookingByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		log.Printf("booking fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status fetched successfully",
		"data":    rec,
	})
}
