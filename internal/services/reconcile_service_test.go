package services

import (
	"testing"

	"seedgen/internal/models"
)

func TestReconcileFindsDanglingAndMalformedRefs(t *testing.T) {
	inventory := []models.InventoryItem{
		{Sku: "INV-LBER-0001", Name: "Nile Special"},
		{Sku: "INV-VODK-0001", Name: "Grey Goose"},
	}
	recipes := []models.Recipe{
		{
			MenuSku:  "TAP-BEER-0001",
			MenuName: "Nile Special",
			Ingredients: []models.RecipeIngredient{
				{InventorySku: "INV-LBER-0001", Qty: 1},
			},
		},
		{
			MenuSku:  "TAP-COCK-0001",
			MenuName: "Classic Mojito",
			Ingredients: []models.RecipeIngredient{
				{InventorySku: "INV-RUM-0002", Qty: 50},  // not in this catalog
				{InventorySku: "INV-VODK-0001", Qty: 10},
			},
		},
		{
			MenuSku:           "TAP-FOOD-0014",
			MenuName:          "Grilled Pork Ribs",
			NeedsConfirmation: true,
			Ingredients: []models.RecipeIngredient{
				{InventorySku: "not-a-sku", Qty: 1},
			},
		},
	}

	report := NewReconcileService().Reconcile(models.ConceptTapas, recipes, inventory)

	if report.TotalRecipes != 3 {
		t.Errorf("totalRecipes = %d", report.TotalRecipes)
	}
	if report.CleanRecipeCount != 1 {
		t.Errorf("cleanRecipeCount = %d, want 1", report.CleanRecipeCount)
	}
	if report.FlaggedRecipes != 1 {
		t.Errorf("flaggedRecipes = %d, want 1", report.FlaggedRecipes)
	}
	if len(report.DanglingRefs) != 1 || report.DanglingRefs[0].InventorySku != "INV-RUM-0002" {
		t.Errorf("danglingRefs = %+v", report.DanglingRefs)
	}
	if report.DanglingRefs[0].Problem != "missing" {
		t.Errorf("dangling problem = %q", report.DanglingRefs[0].Problem)
	}
	if len(report.MalformedRefs) != 1 || report.MalformedRefs[0].InventorySku != "not-a-sku" {
		t.Errorf("malformedRefs = %+v", report.MalformedRefs)
	}
	if report.InventoryItemSeen != 2 {
		t.Errorf("inventoryItems = %d", report.InventoryItemSeen)
	}
}

func TestReconcileEmptyRecipes(t *testing.T) {
	report := NewReconcileService().Reconcile(models.ConceptCafesserie, nil, nil)
	if report.TotalRecipes != 0 || report.CleanRecipeCount != 0 {
		t.Fatalf("report = %+v", report)
	}
	if report.DanglingRefs == nil || report.MalformedRefs == nil {
		t.Fatal("issue slices must be non-nil so the JSON report carries [] not null")
	}
}
