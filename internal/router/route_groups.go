package router

import (
	"seedgen/internal/handlers"
	"seedgen/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}
}

// SetupConceptRoutes sets up the per-concept document and generation routes.
func SetupConceptRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, generationHandler *handlers.GenerationHandler) {
	conceptRoutes := apiGroup.Group("/concepts/:concept")
	conceptRoutes.Use(middleware.AuthMiddleware())
	{
		conceptRoutes.GET("/menu", catalogHandler.GetMenu)
		conceptRoutes.GET("/inventory", catalogHandler.GetInventory)
		conceptRoutes.GET("/recipes", catalogHandler.GetRecipes)
		conceptRoutes.GET("/recipes/flagged", catalogHandler.GetFlaggedRecipes)
		conceptRoutes.GET("/reconciliation", catalogHandler.GetReconciliation)
		conceptRoutes.POST("/generate", generationHandler.Generate)
	}
}
