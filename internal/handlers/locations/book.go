package locations

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/aryan100k/Storoo-Backend/internal/store"
	"github.com/gin-gonic/gin"
)

// Book creates a booking against an arbitrary existing location.
// KISS flow, three strictly sequential store calls:
// 1) Insert a synthesized user and read back its generated id.
// 2) Select any one existing location.
// 3) Insert the booking row referencing both.
//
// There is no transaction across the steps: a failure at step 2 or 3 leaves
// the rows already written in place. That matches the deployed behavior and
// must not be "fixed" with a rollback here.
func (h *Handler) Book(c *gin.Context) {
	var in struct {
		LuggageType string `json:"luggageType"`
		Duration    string `json:"duration"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if in.LuggageType == "" || in.Duration == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields: luggageType and duration are required",
		})
		return
	}

	user, err := h.store.InsertUser(synthUser())
	if err != nil {
		log.Printf("user creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.store.FirstLocation()
	if err != nil {
		log.Printf("location fetch error: %v", err)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No locations available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.store.InsertBooking(store.NewBooking{
		UserID:      user.ID,
		LocationID:  loc.ID(),
		LuggageType: in.LuggageType,
		Duration:    in.Duration,
		Status:      "pending",
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("booking creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking created successfully",
		"data":    rows,
		"bookingDetails": gin.H{
			"userId":      user.ID,
			"locationId":  loc.ID(),
			"luggageType": in.LuggageType,
			"duration":    in.Duration,
			"status":      "pending",
		},
	})
}

// synthUser builds the placeholder user each booking is attributed to.
// The timestamp email keeps inserts unique under normal operation; it is
// not guaranteed collision-free.
func synthUser() store.NewUser {
	return store.NewUser{
		Name:  "Test User",
		Email: fmt.Sprintf("user_%d@example.com", time.Now().UnixMilli()),
		Phone: fmt.Sprintf("+91%d", rand.Int64N(9_000_000_000)+1_000_000_000),
	}
}
