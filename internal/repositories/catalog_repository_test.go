package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seedgen/internal/models"
)

func TestCatalogRepositoryRoundtrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepository(dir)

	cost := int64(62500)
	inventory := &models.InventoryDocument{
		Comment: "test",
		Items: []models.InventoryItem{
			{Sku: "INV-LBER-0001", Name: "Nile Special", Category: "LOCAL BEERS", Unit: "Crate", UnitCost: &cost, ReorderLevel: 5, ReorderQty: 10, InitialStock: 20},
			{Sku: "INV-GIN-0001", Name: "Costless Gin", Category: "GINS & SPIRITS", Unit: "Btl"},
		},
	}
	if err := repo.SaveInventory(models.ConceptTapas, inventory); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	loaded, err := repo.LoadInventory(models.ConceptTapas)
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("loaded %d items", len(loaded.Items))
	}
	if loaded.Items[0].UnitCost == nil || *loaded.Items[0].UnitCost != 62500 {
		t.Errorf("cost = %v", loaded.Items[0].UnitCost)
	}
	if loaded.Items[1].UnitCost != nil {
		t.Errorf("nil cost should roundtrip as null, got %v", loaded.Items[1].UnitCost)
	}

	recipes := []models.Recipe{
		{
			MenuSku:  "TAP-BEER-0001",
			MenuName: "Nile Special",
			Ingredients: []models.RecipeIngredient{
				{InventorySku: "INV-LBER-0001", Name: "Nile Special", Qty: 1, Unit: "BTL"},
			},
		},
	}
	if err := repo.SaveRecipes(models.ConceptTapas, recipes); err != nil {
		t.Fatalf("SaveRecipes: %v", err)
	}
	loadedRecipes, err := repo.LoadRecipes(models.ConceptTapas)
	if err != nil {
		t.Fatalf("LoadRecipes: %v", err)
	}
	if len(loadedRecipes) != 1 || loadedRecipes[0].MenuSku != "TAP-BEER-0001" {
		t.Fatalf("recipes = %+v", loadedRecipes)
	}
}

func TestLoadMenuMissingFile(t *testing.T) {
	repo := NewCatalogRepository(t.TempDir())
	_, err := repo.LoadMenu(models.ConceptCafesserie)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("err = %v, want ErrMissingInput", err)
	}
}

func TestSaveRecipesNilBecomesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepository(dir)
	if err := repo.SaveRecipes(models.ConceptCafesserie, nil); err != nil {
		t.Fatalf("SaveRecipes: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, RecipesFile(models.ConceptCafesserie)))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("file = %q, want []", string(data))
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepository(dir)
	if err := repo.SaveMenu(models.ConceptTapas, &models.MenuDocument{Items: []models.MenuItem{}}); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != MenuFile(models.ConceptTapas) {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("directory contents = %v", names)
	}
}
