package main

import (
	"log"

	"github.com/Jannadolf/LookNest/internal/router"
	"github.com/Jannadolf/LookNest/internal/ws"
	"github.com/Jannadolf/LookNest/pkg/config"
	"github.com/Jannadolf/LookNest/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Notification hub, scoped here and handed to whoever needs it
	hub := ws.NewHub()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, hub)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
