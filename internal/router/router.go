package router

import (
	"fmt"

	"seedgen/internal/handlers"
	"seedgen/internal/repositories"
	"seedgen/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the review API.
func Setup(engine *gin.Engine, dataDir string) error {
	// Initialize Repositories
	catalogRepo := repositories.NewCatalogRepository(dataDir)

	// Initialize Services
	authService, err := services.NewAuthService()
	if err != nil {
		return fmt.Errorf("initializing auth service: %w", err)
	}
	generationService := services.NewGenerationService(
		catalogRepo,
		services.NewInventoryService(),
		services.NewExpansionService(),
		services.NewRecipeService(),
		services.NewReconcileService(),
	)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	generationHandler := handlers.NewGenerationHandler(generationService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)
	SetupConceptRoutes(apiV1, catalogHandler, generationHandler)

	return nil
}
