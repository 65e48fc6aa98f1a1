package services

import (
	"fmt"

	"seedgen/internal/models"
	"seedgen/internal/repositories"
	"seedgen/pkg/utils"
)

// GenerationService runs the full pipeline for one concept: load the curated
// menu, build the inventory catalog, expand the menu where the concept calls
// for it, derive recipes, and reconcile the result. Every stage writes its
// document before the next one runs, so partial output is inspectable after
// a failure.
type GenerationService interface {
	Generate(concept models.Concept) (*models.GenerationResult, error)
}

type generationService struct {
	catalogRepo repositories.CatalogRepository
	inventory   InventoryService
	expansion   ExpansionService
	recipes     RecipeService
	reconcile   ReconcileService
}

// NewGenerationService creates a new instance of GenerationService.
func NewGenerationService(
	catalogRepo repositories.CatalogRepository,
	inventory InventoryService,
	expansion ExpansionService,
	recipes RecipeService,
	reconcile ReconcileService,
) GenerationService {
	return &generationService{
		catalogRepo: catalogRepo,
		inventory:   inventory,
		expansion:   expansion,
		recipes:     recipes,
		reconcile:   reconcile,
	}
}

func (s *generationService) Generate(concept models.Concept) (*models.GenerationResult, error) {
	// The curated menu is authored by hand; a missing file is an operator
	// error, not something to regenerate around.
	menu, err := s.catalogRepo.LoadMenu(concept)
	if err != nil {
		return nil, fmt.Errorf("loading %s menu: %w", concept, err)
	}

	inventoryDoc, err := s.inventory.BuildCatalog(concept)
	if err != nil {
		return nil, err
	}
	if err := s.catalogRepo.SaveInventory(concept, inventoryDoc); err != nil {
		return nil, err
	}
	utils.LogInfo("Inventory catalog written", map[string]interface{}{
		"concept": string(concept),
		"items":   len(inventoryDoc.Items),
	})

	var stats *models.ExpansionStats
	if concept == models.ConceptTapas {
		menu.Items, stats = s.expansion.ExpandMenu(menu.Items, inventoryDoc.Items)
		if err := s.catalogRepo.SaveMenu(concept, menu); err != nil {
			return nil, err
		}
		utils.LogInfo("Menu expanded", map[string]interface{}{
			"concept":    string(concept),
			"totalItems": stats.TotalItems,
			"newDrinks":  stats.NewDrinks,
			"skipped":    stats.Skipped,
		})
	}

	recipes, err := s.recipes.BuildRecipes(concept, menu.Items, inventoryDoc.Items)
	if err != nil {
		return nil, err
	}
	if err := s.catalogRepo.SaveRecipes(concept, recipes); err != nil {
		return nil, err
	}

	report := s.reconcile.Reconcile(concept, recipes, inventoryDoc.Items)
	if err := s.catalogRepo.SaveReport(concept, report); err != nil {
		return nil, err
	}
	utils.LogInfo("Reconciliation complete", map[string]interface{}{
		"concept":  string(concept),
		"recipes":  report.TotalRecipes,
		"clean":    report.CleanRecipeCount,
		"dangling": len(report.DanglingRefs),
	})

	flagged := 0
	for _, r := range recipes {
		if r.NeedsConfirmation {
			flagged++
		}
	}
	return &models.GenerationResult{
		Concept:        concept,
		MenuItems:      len(menu.Items),
		InventoryItems: len(inventoryDoc.Items),
		Recipes:        len(recipes),
		Flagged:        flagged,
		Expansion:      stats,
		Report:         *report,
	}, nil
}
