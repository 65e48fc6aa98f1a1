package services

import (
	"fmt"

	"seedgen/internal/models"
	"seedgen/internal/rules"
	"seedgen/pkg/utils"
)

// RecipeService runs a concept's menu through its rule table and produces one
// recipe per matched item.
type RecipeService interface {
	BuildRecipes(concept models.Concept, menu []models.MenuItem, inventory []models.InventoryItem) ([]models.Recipe, error)
}

type recipeService struct{}

// NewRecipeService creates a new instance of RecipeService.
func NewRecipeService() RecipeService {
	return &recipeService{}
}

func (s *recipeService) BuildRecipes(concept models.Concept, menu []models.MenuItem, inventory []models.InventoryItem) ([]models.Recipe, error) {
	var table []rules.Rule
	switch concept {
	case models.ConceptCafesserie:
		table = rules.CafesserieTable
	case models.ConceptTapas:
		table = rules.TapasTable
	default:
		return nil, fmt.Errorf("no rule table for concept %q", concept)
	}

	ctx := rules.NewContext(inventory)
	recipes := make([]models.Recipe, 0, len(menu))
	unmatched := 0
	for _, item := range menu {
		recipe, ok := rules.Evaluate(item, ctx, table)
		if !ok {
			unmatched++
			utils.LogWarn("No recipe rule matched menu item", map[string]interface{}{
				"sku":      item.Sku,
				"item":     item.Name,
				"category": item.Category,
			})
			continue
		}
		recipes = append(recipes, recipe)
	}
	if unmatched > 0 {
		utils.LogInfo("Menu items left without recipes", map[string]interface{}{
			"concept":   string(concept),
			"unmatched": unmatched,
		})
	}
	return recipes, nil
}
