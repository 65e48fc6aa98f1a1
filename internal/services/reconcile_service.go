package services

import (
	"seedgen/internal/models"
	"seedgen/internal/sku"
)

// ReconcileService validates recipe -> inventory references after generation.
// Ingredient SKUs are unvalidated foreign keys: rule tables may point at
// items from a larger stock sheet than the one generated here, so findings
// are reported, never fatal.
type ReconcileService interface {
	Reconcile(concept models.Concept, recipes []models.Recipe, inventory []models.InventoryItem) *models.ReconciliationReport
}

type reconcileService struct{}

// NewReconcileService creates a new instance of ReconcileService.
func NewReconcileService() ReconcileService {
	return &reconcileService{}
}

func (s *reconcileService) Reconcile(concept models.Concept, recipes []models.Recipe, inventory []models.InventoryItem) *models.ReconciliationReport {
	known := make(map[string]bool, len(inventory))
	for _, item := range inventory {
		known[item.Sku] = true
	}

	report := &models.ReconciliationReport{
		Concept:           concept,
		TotalRecipes:      len(recipes),
		DanglingRefs:      []models.RecipeIssue{},
		MalformedRefs:     []models.RecipeIssue{},
		InventoryItemSeen: len(inventory),
	}

	for _, recipe := range recipes {
		if recipe.NeedsConfirmation {
			report.FlaggedRecipes++
		}
		clean := true
		for _, ingredient := range recipe.Ingredients {
			issue := models.RecipeIssue{
				MenuSku:      recipe.MenuSku,
				MenuName:     recipe.MenuName,
				InventorySku: ingredient.InventorySku,
			}
			switch {
			case !sku.IsWellFormed(ingredient.InventorySku):
				issue.Problem = "malformed"
				report.MalformedRefs = append(report.MalformedRefs, issue)
				clean = false
			case !known[ingredient.InventorySku]:
				issue.Problem = "missing"
				report.DanglingRefs = append(report.DanglingRefs, issue)
				clean = false
			}
		}
		if clean {
			report.CleanRecipeCount++
		}
	}
	return report
}
