package main

import (
	"fmt"
	"net/http"
	"os"

	"advisor/internal/config"
	"advisor/internal/database"
	"advisor/internal/handlers"
	"advisor/internal/logger"
	"advisor/internal/middleware"
	"advisor/internal/services"
	"advisor/internal/store"
	"advisor/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "advisor/internal/docs" // Import swagger docs
)

// @title           Advisor API
// @version         1.0
// @description     Advisor stores investor profiles and turns them into rule-based, weighted asset allocations with a human-readable rationale per item.

// @host      localhost:8080
// @BasePath  /

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Build the persistence backend for the configured driver
	backend, err := newBackend(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create store backend: %w", err)
	}

	// Create the record store (seeds collections on first use)
	st, err := store.New(backend)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	// Register custom enum validators with the binding engine
	validator.Register()

	// Initialize services
	assetService := services.NewAssetService(st)
	profileService := services.NewProfileService(st)
	recommendationService := services.NewRecommendationService(st, profileService)

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetService)
	profileHandler := handlers.NewProfileHandler(profileService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Asset routes
	router.GET("/assets", assetHandler.ListAssets)

	// Profile routes
	router.GET("/profiles", profileHandler.ListProfiles)
	router.POST("/profiles", profileHandler.CreateProfile)

	// Recommendation routes
	router.POST("/recommendations", recommendationHandler.CreateRecommendation)

	log.Infof("Starting Advisor backend server on port %s (store driver: %s)", appConfig.Port, appConfig.StoreDriver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// newBackend builds the persistence backend selected by STORE_DRIVER.
func newBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.StoreDriver {
	case "file":
		return store.NewFileBackend(cfg.DataDir)
	case "memory":
		return store.NewMemoryBackend(), nil
	case "sqlite", "postgres":
		dbManager, err := database.NewManager(cfg)
		if err != nil {
			return nil, err
		}
		if err := dbManager.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return store.NewGormBackend(dbManager.DB()), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
