package main

import (
	"flag"
	"log"
	"strings"

	"seedgen/internal/models"
	"seedgen/internal/repositories"
	"seedgen/internal/services"
	"seedgen/pkg/utils"
)

func main() {
	concepts := flag.String("concepts", "cafesserie,tapas", "comma-separated concepts to generate")
	dataDir := flag.String("data", "", "data directory (defaults to DATA_DIR env or ./data)")
	flag.Parse()

	utils.LoadDotenv()
	utils.InitLogger()

	dir := *dataDir
	if dir == "" {
		dir = utils.Getenv("DATA_DIR", "data")
	}

	catalogRepo := repositories.NewCatalogRepository(dir)
	generation := services.NewGenerationService(
		catalogRepo,
		services.NewInventoryService(),
		services.NewExpansionService(),
		services.NewRecipeService(),
		services.NewReconcileService(),
	)

	for _, name := range strings.Split(*concepts, ",") {
		concept, err := models.ParseConcept(strings.TrimSpace(name))
		if err != nil {
			log.Fatalf("Invalid concept: %v", err)
		}

		result, err := generation.Generate(concept)
		if err != nil {
			utils.LogError(err, "Generation failed")
			log.Fatalf("Generation failed for %s: %v", concept, err)
		}

		utils.LogInfo("Generation complete", map[string]interface{}{
			"concept":   string(concept),
			"menu":      result.MenuItems,
			"inventory": result.InventoryItems,
			"recipes":   result.Recipes,
			"flagged":   result.Flagged,
		})
	}
}
