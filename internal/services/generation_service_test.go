package services

import (
	"testing"

	"seedgen/internal/models"
	"seedgen/internal/repositories"
)

func newGenerationFixture(t *testing.T) (GenerationService, repositories.CatalogRepository) {
	t.Helper()
	repo := repositories.NewCatalogRepository(t.TempDir())
	svc := NewGenerationService(
		repo,
		NewInventoryService(),
		NewExpansionService(),
		NewRecipeService(),
		NewReconcileService(),
	)
	return svc, repo
}

func TestGenerateCafesserie(t *testing.T) {
	svc, repo := newGenerationFixture(t)

	menu := &models.MenuDocument{Items: []models.MenuItem{
		{Sku: "CAF-COFF-0001", Name: "Espresso", Category: "coffee", ItemType: models.ItemTypeDrink, Price: 8000},
		{Sku: "CAF-COFF-0002", Name: "Double Espresso", Category: "coffee", ItemType: models.ItemTypeDrink, Price: 10000},
		{Sku: "CAF-SAND-0001", Name: "Veggie Club Sandwich", Category: "sandwiches", ItemType: models.ItemTypeFood, Price: 17000},
	}}
	if err := repo.SaveMenu(models.ConceptCafesserie, menu); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}

	result, err := svc.Generate(models.ConceptCafesserie)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.InventoryItems != 77 {
		t.Errorf("inventoryItems = %d, want 77", result.InventoryItems)
	}
	if result.Recipes != 3 {
		t.Errorf("recipes = %d, want 3", result.Recipes)
	}
	if result.Flagged != 1 { // the generic sandwich
		t.Errorf("flagged = %d, want 1", result.Flagged)
	}
	if result.Expansion != nil {
		t.Error("cafesserie must not be expanded")
	}

	// Cafesserie recipes reference the fixed catalog, so the report is clean.
	report, err := repo.LoadReport(models.ConceptCafesserie)
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if len(report.DanglingRefs) != 0 || len(report.MalformedRefs) != 0 {
		t.Errorf("report has findings: %+v", report)
	}
	if report.CleanRecipeCount != 3 {
		t.Errorf("cleanRecipeCount = %d", report.CleanRecipeCount)
	}
}

func TestGenerateTapasExpandsAndReconciles(t *testing.T) {
	svc, repo := newGenerationFixture(t)

	menu := &models.MenuDocument{Items: []models.MenuItem{
		{Sku: "TAP-COCK-0001", Name: "Classic Mojito", Category: "Cocktails", ItemType: models.ItemTypeDrink, Price: 25000},
	}}
	if err := repo.SaveMenu(models.ConceptTapas, menu); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}

	result, err := svc.Generate(models.ConceptTapas)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Expansion == nil {
		t.Fatal("tapas generation must report expansion stats")
	}
	if result.Expansion.NewDrinks == 0 {
		t.Error("expansion added no drinks from the stock sheet")
	}
	if result.MenuItems != 1+result.Expansion.NewDrinks {
		t.Errorf("menuItems = %d with %d new drinks", result.MenuItems, result.Expansion.NewDrinks)
	}
	if result.Recipes != result.MenuItems {
		t.Errorf("recipes = %d, menu = %d; every tapas item matches a rule", result.Recipes, result.MenuItems)
	}

	// The expanded menu was persisted, not just returned.
	saved, err := repo.LoadMenu(models.ConceptTapas)
	if err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}
	if len(saved.Items) != result.MenuItems {
		t.Errorf("saved menu has %d items, result says %d", len(saved.Items), result.MenuItems)
	}

	// Cocktail templates reference the larger stock sheet, so the report
	// carries dangling refs instead of failing the run.
	report, err := repo.LoadReport(models.ConceptTapas)
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if len(report.DanglingRefs) == 0 {
		t.Error("expected dangling refs from the mojito template")
	}
}

func TestGenerateFailsWithoutCuratedMenu(t *testing.T) {
	svc, _ := newGenerationFixture(t)
	_, err := svc.Generate(models.ConceptCafesserie)
	if err == nil {
		t.Fatal("expected an error when the curated menu file is missing")
	}
}
