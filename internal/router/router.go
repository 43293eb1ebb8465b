package router

import (
	"log"

	"github.com/Jannadolf/LookNest/internal/handlers"
	"github.com/Jannadolf/LookNest/internal/middleware"
	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/Jannadolf/LookNest/internal/repositories"
	"github.com/Jannadolf/LookNest/internal/ws"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, hub *ws.Hub) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.ProfileView{},
		&models.Notification{},
		&models.SavedPhoto{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	profileViewRepo := repositories.NewPostgresProfileViewRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	photoRepo := repositories.NewMongoPhotoRepository(mgClient.Database("looknest"))
	savedPhotoRepo := repositories.NewPostgresSavedPhotoRepository(pgdb)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public routes (optional bearer token) ---
	// The public profile route still sees claims when a token is sent, which
	// is how profile views get attributed to a viewer.
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuthMiddleware())

	userHandler := handlers.NewUserHandler(userRepo, profileViewRepo)
	userHandler.RegisterPublicRoutes(public)

	photoHandler := handlers.NewPhotoHandler(photoRepo, userRepo)
	photoHandler.RegisterPublicRoutes(public)
	log.Println("Public routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, hub)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	photoHandler.RegisterPhotoRoutes(api)
	log.Println("Photo routes configured.")

	savedPhotoHandler := handlers.NewSavedPhotoHandler(savedPhotoRepo, photoRepo, userRepo)
	savedPhotoHandler.RegisterSavedPhotoRoutes(api)
	log.Println("Saved photo routes configured.")

	// --- Live notification channel ---
	e.GET("/ws", hub.Handler())
	log.Println("Websocket notification channel configured.")

	log.Println("All routes configured.")
}
