package auth

import (
	"log"
	"net/http"

	"github.com/aryan100k/Storoo-Backend/internal/store"
	"github.com/gin-gonic/gin"
)

// Register inserts a user row from caller-supplied fields and responds with
// the inserted rows. Fields pass through verbatim; the store enforces any
// shape or uniqueness rules.
func (h *Handler) Register(c *gin.Context) {
	var in store.NewUser
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	rows, err := h.store.InsertUsers([]store.NewUser{in})
	if err != nil {
		log.Printf("user registration error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
