package services

import (
	"strings"
	"testing"

	"seedgen/internal/models"
)

func cost(v int64) *int64 { return &v }

func baseMenu() []models.MenuItem {
	return []models.MenuItem{
		{Sku: "TAP-FOOD-0001", Name: "Full English Breakfast", Category: "Breakfast", ItemType: models.ItemTypeFood},
		{Sku: "TAP-BEER-0001", Name: "Nile Special 1*20BTL*500MLS", Category: "Beers & Ciders", ItemType: models.ItemTypeDrink},
		{Sku: "TAP-BEER-0002", Name: "Tusker Lager 1*25BTL*500MLS", Category: "Beers & Ciders", ItemType: models.ItemTypeDrink},
		{Sku: "TAP-BEER-0003", Name: "Club Pilsner 1*20BTL*500MLS", Category: "Beers & Ciders", ItemType: models.ItemTypeDrink},
	}
}

func sampleInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{Sku: "INV-LBER-0001", Name: "Nile Special 1*20BTL*500MLS", Category: "LOCAL BEERS", Unit: "Crate", UnitCost: cost(62500)},
		{Sku: "INV-LBER-0002", Name: "Bell Lagar 1*25BTL*500MLS", Category: "LOCAL BEERS", Unit: "Crate", UnitCost: cost(66000)},
		{Sku: "INV-IBER-0001", Name: "Heineken 1*24*33cl", Category: "Imported Beers", Unit: "Cartons", UnitCost: cost(161000)},
		{Sku: "INV-WRED-0001", Name: "Four Cousins Red", Category: "WINE (Red)", Unit: "BTL", UnitCost: cost(33000)},
		{Sku: "INV-VODK-0001", Name: "Grey Goose 1Lt", Category: "Vodka", Unit: "Btl", UnitCost: cost(160000)},
		{Sku: "INV-GIN-0001", Name: "Costless Gin", Category: "GINS & SPIRITS", Unit: "Btl", UnitCost: nil},
	}
}

func TestExpandMenuAddsDrinks(t *testing.T) {
	svc := NewExpansionService()
	expanded, stats := svc.ExpandMenu(baseMenu(), sampleInventory())

	byName := make(map[string]models.MenuItem)
	for _, item := range expanded {
		byName[item.Name] = item
	}

	// Beers already on the menu are not duplicated.
	count := 0
	for _, item := range expanded {
		if item.Name == "Nile Special 1*20BTL*500MLS" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Nile Special appears %d times, want 1", count)
	}

	bell, ok := byName["Bell Lagar 1*25BTL*500MLS"]
	if !ok {
		t.Fatal("new beer missing from expanded menu")
	}
	if bell.Sku != "TAP-BEER-0004" {
		t.Errorf("beer SKU = %q, want TAP-BEER-0004 (seeded past the curated menu)", bell.Sku)
	}
	if bell.Price != 231000 { // 66000 * 3.5, rounded to the nearest 100
		t.Errorf("beer price = %d, want 231000", bell.Price)
	}
	if bell.Category != "Beers & Ciders" || bell.ItemType != models.ItemTypeDrink || bell.Station != models.StationBar {
		t.Errorf("beer item = %+v", bell)
	}

	glass, ok := byName["Four Cousins Red (Glass)"]
	if !ok {
		t.Fatal("wine glass entry missing")
	}
	if glass.Price != 33000 || glass.Category != "Wines - Red" {
		t.Errorf("glass = %+v", glass)
	}
	if !strings.HasPrefix(glass.Description, "175ml glass of ") {
		t.Errorf("glass description = %q", glass.Description)
	}
	bottle, ok := byName["Four Cousins Red (Bottle)"]
	if !ok {
		t.Fatal("wine bottle entry missing")
	}
	if bottle.Price != 116000 { // 33000 * 3.5, rounded to the nearest 1000
		t.Errorf("bottle price = %d", bottle.Price)
	}

	shot, ok := byName["Grey Goose 1Lt (Shot)"]
	if !ok {
		t.Fatal("spirit shot entry missing")
	}
	if shot.Price != 28000 { // 160000 * 0.035 * 5.0
		t.Errorf("shot price = %d", shot.Price)
	}
	if shot.Category != "Spirits - Vodka" {
		t.Errorf("shot category = %q", shot.Category)
	}

	if _, ok := byName["Costless Gin (Shot)"]; ok {
		t.Error("item without a cost should have been skipped")
	}
	if stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", stats.Skipped)
	}
	if stats.NewDrinks != 5 { // 2 beers + glass + bottle + shot
		t.Errorf("newDrinks = %d, want 5", stats.NewDrinks)
	}
	if stats.FoodItems != 1 {
		t.Errorf("foodItems = %d, want 1", stats.FoodItems)
	}
}

func TestExpandMenuIsIdempotent(t *testing.T) {
	svc := NewExpansionService()
	first, firstStats := svc.ExpandMenu(baseMenu(), sampleInventory())
	second, secondStats := svc.ExpandMenu(first, sampleInventory())

	if len(second) != len(first) {
		t.Fatalf("second run grew the menu: %d -> %d", len(first), len(second))
	}
	if secondStats.NewDrinks != 0 {
		t.Errorf("second run added %d drinks, want 0", secondStats.NewDrinks)
	}
	if firstStats.NewDrinks == 0 {
		t.Error("first run added nothing; fixture is broken")
	}
}

func TestExpandMenuRaisesCountersFromExistingSkus(t *testing.T) {
	menu := []models.MenuItem{
		{Sku: "TAP-BEER-0017", Name: "Some Prior Beer", Category: "Beers & Ciders", ItemType: models.ItemTypeDrink},
	}
	inventory := []models.InventoryItem{
		{Sku: "INV-LBER-0001", Name: "Bell Lagar 1*25BTL*500MLS", Category: "LOCAL BEERS", Unit: "Crate", UnitCost: cost(66000)},
	}

	svc := NewExpansionService()
	expanded, _ := svc.ExpandMenu(menu, inventory)

	var added models.MenuItem
	for _, item := range expanded {
		if item.Name == "Bell Lagar 1*25BTL*500MLS" {
			added = item
		}
	}
	if added.Sku != "TAP-BEER-0018" {
		t.Fatalf("SKU = %q, want TAP-BEER-0018 (one past the highest existing)", added.Sku)
	}
}
