package routes

import (
	"log"

	"coverage-api-backend/internal/api/handlers"
	"coverage-api-backend/internal/api/middleware"
	"coverage-api-backend/internal/auth"
	"coverage-api-backend/internal/config"
	"coverage-api-backend/internal/repository"
	"coverage-api-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	coverageRepo := repository.NewCoverageRepository(db)

	// Initialize services
	coverageService := service.NewCoverageService(coverageRepo, validator)

	// Initialize the token gate
	tokenStore, err := auth.NewTokenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to build API token store: %v", err)
	}
	tokenMiddleware := auth.NewTokenMiddleware(tokenStore)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	coverageHandler := handlers.NewCoverageHandler(coverageService)
	maintenanceHandler := handlers.NewMaintenanceHandler(coverageService)

	// Greeting and health routes, unauthenticated for platform probes
	router.GET("/", healthHandler.Greeting)
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// All data-access endpoints require the API token
	protected := router.Group("/", tokenMiddleware.RequireToken())
	{
		coverages := protected.Group("/coverages")
		{
			coverages.GET("", coverageHandler.ListCoverages)
			coverages.POST("", coverageHandler.CreateCoverage)
			coverages.GET("/ceid/:ceid", coverageHandler.GetCoverageByCEID)
			coverages.DELETE("/ceid/:ceid", coverageHandler.DeleteCoverage)
			coverages.GET("/name/:name", coverageHandler.GetCoverageByName)
		}

		protected.POST("/database/recreate", maintenanceHandler.RecreateDatabase)
	}

	return router
}
