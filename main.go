package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/aryan100k/Storoo-Backend/internal/config"
	"github.com/aryan100k/Storoo-Backend/internal/handlers/auth"
	"github.com/aryan100k/Storoo-Backend/internal/handlers/locations"
	"github.com/aryan100k/Storoo-Backend/internal/middleware"
	"github.com/aryan100k/Storoo-Backend/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Single store client for the whole process; handlers share it.
	st, err := store.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": fmt.Sprint(recovered),
		})
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	locH := locations.New(st)
	authH := auth.New(st)

	loc := r.Group("/api/locations")
	{
		loc.GET("/test", locH.Ping)
		loc.GET("/locations", locH.List)
		loc.POST("/book", locH.Book)
		loc.GET("/booking/:bookingId/status", locH.Status)
	}

	r.POST("/api/auth/register", authH.Register)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
