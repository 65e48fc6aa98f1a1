package services

import (
	"fmt"
	"strings"

	"seedgen/internal/models"
	"seedgen/internal/pricing"
	"seedgen/internal/sku"
	"seedgen/pkg/utils"
)

// Menu SKU codes minted by the expander.
const (
	codeBeer   = "BEER"
	codeWine   = "WINE"
	codeSpirit = "SPRT"
)

// drinkClass binds a set of inventory categories to the menu category their
// items are sold under. The tables below carry both category vocabularies in
// use: the curated one ("Wine - Red") and the raw stock-sheet one
// ("WINE (Red)"), so the expander works against either inventory source.
type drinkClass struct {
	InventoryCategory string
	MenuCategory      string
}

var beerClasses = []drinkClass{
	{"Beers", "Beers & Ciders"},
	{"LOCAL BEERS", "Beers & Ciders"},
	{"Imported Beers", "Beers & Ciders"},
}

var wineClasses = []drinkClass{
	{"Wine - Red", "Wines - Red"},
	{"Wine - White", "Wines - White"},
	{"Wine - Rose", "Wines - Rosé"},
	{"Champagne", "Wines - Champagne & Sparkling"},
	{"WINE (Red)", "Wines - Red"},
	{"WINE (Rose)", "Wines - Rosé"},
	{"WINE (White)", "Wines - White"},
	{"CHAMPAGNE", "Wines - Champagne & Sparkling"},
	{"SPARKLING WINE", "Wines - Champagne & Sparkling"},
	{"PROSECCO", "Wines - Champagne & Sparkling"},
}

var spiritClasses = []drinkClass{
	{"Spirits - Vodka", "Spirits - Vodka"},
	{"Spirits - Gin", "Spirits - Gin"},
	{"Spirits - Rum", "Spirits - Rum"},
	{"Spirits - Tequila", "Spirits - Tequila"},
	{"Spirits - Whiskey", "Spirits - Whiskey & Bourbon"},
	{"Spirits - Brandy", "Spirits - Brandy & Cognac"},
	{"Liqueurs", "Spirits - Creams & Liqueurs"},
	{"GINS & SPIRITS", "Spirits - Gin"},
	{"Vodka", "Spirits - Vodka"},
	{"RUM", "Spirits - Rum"},
	{"TEQUILA", "Spirits - Tequila"},
	{"BLENDED WHISKEY", "Spirits - Whiskey & Bourbon"},
	{"SINGLE MALT WHISKEY", "Spirits - Whiskey & Bourbon"},
	{"BRANDY/COGNAC", "Spirits - Brandy & Cognac"},
	{"CREAMS/ LIQUEURS", "Spirits - Creams & Liqueurs"},
}

// ExpansionService grows a curated menu with one sellable entry per drink in
// the inventory catalog: beers by the bottle, wines by glass and bottle,
// spirits by the shot.
type ExpansionService interface {
	ExpandMenu(menu []models.MenuItem, inventory []models.InventoryItem) ([]models.MenuItem, *models.ExpansionStats)
}

type expansionService struct{}

// NewExpansionService creates a new instance of ExpansionService.
func NewExpansionService() ExpansionService {
	return &expansionService{}
}

func (s *expansionService) ExpandMenu(menu []models.MenuItem, inventory []models.InventoryItem) ([]models.MenuItem, *models.ExpansionStats) {
	alloc := sku.NewAllocator("TAP")
	alloc.Seed(codeBeer, 4) // TAP-BEER-0003 exists in the curated menu
	alloc.Seed(codeWine, 1)
	alloc.Seed(codeSpirit, 1)
	for _, item := range menu {
		for _, code := range []string{codeBeer, codeWine, codeSpirit} {
			if strings.Contains(item.Sku, code) {
				if n, ok := sku.Counter(item.Sku); ok {
					alloc.Raise(code, n+1)
				}
			}
		}
	}

	// Items already on the curated menu are never re-added; the expansion is
	// idempotent against its own output.
	onMenu := make(map[string]bool, len(menu))
	for _, item := range menu {
		onMenu[item.Name] = true
	}

	stats := &models.ExpansionStats{}
	expanded := append([]models.MenuItem(nil), menu...)

	add := func(item models.MenuItem) {
		expanded = append(expanded, item)
		onMenu[item.Name] = true
		stats.NewDrinks++
	}
	usableCost := func(inv models.InventoryItem) (int64, bool) {
		if inv.UnitCost == nil {
			stats.Skipped++
			utils.LogWarn("Skipping drink without a usable cost", map[string]interface{}{
				"sku":  inv.Sku,
				"item": inv.Name,
			})
			return 0, false
		}
		return *inv.UnitCost, true
	}

	for _, class := range beerClasses {
		for _, inv := range itemsIn(inventory, class.InventoryCategory) {
			if onMenu[inv.Name] {
				continue
			}
			cost, ok := usableCost(inv)
			if !ok {
				continue
			}
			unit := inv.Unit
			if unit == "" {
				unit = "BTL"
			}
			add(models.MenuItem{
				Sku:         alloc.Next(codeBeer),
				Name:        inv.Name,
				Description: fmt.Sprintf("%s - %s", inv.Name, unit),
				Category:    class.MenuCategory,
				ItemType:    models.ItemTypeDrink,
				Station:     models.StationBar,
				Price:       pricing.BeerBottlePrice(cost),
			})
		}
	}

	for _, class := range wineClasses {
		for _, inv := range itemsIn(inventory, class.InventoryCategory) {
			if onMenu[inv.Name] || onMenu[inv.Name+" (Glass)"] {
				continue
			}
			cost, ok := usableCost(inv)
			if !ok {
				continue
			}
			add(models.MenuItem{
				Sku:         alloc.Next(codeWine),
				Name:        inv.Name + " (Glass)",
				Description: fmt.Sprintf("175ml glass of %s", inv.Name),
				Category:    class.MenuCategory,
				ItemType:    models.ItemTypeDrink,
				Station:     models.StationBar,
				Price:       pricing.WineGlassPrice(cost),
			})
			add(models.MenuItem{
				Sku:         alloc.Next(codeWine),
				Name:        inv.Name + " (Bottle)",
				Description: fmt.Sprintf("750ml bottle of %s", inv.Name),
				Category:    class.MenuCategory,
				ItemType:    models.ItemTypeDrink,
				Station:     models.StationBar,
				Price:       pricing.WineBottlePrice(cost),
			})
		}
	}

	for _, class := range spiritClasses {
		for _, inv := range itemsIn(inventory, class.InventoryCategory) {
			if onMenu[inv.Name] || onMenu[inv.Name+" (Shot)"] {
				continue
			}
			cost, ok := usableCost(inv)
			if !ok {
				continue
			}
			add(models.MenuItem{
				Sku:         alloc.Next(codeSpirit),
				Name:        inv.Name + " (Shot)",
				Description: fmt.Sprintf("35ml shot of %s", inv.Name),
				Category:    class.MenuCategory,
				ItemType:    models.ItemTypeDrink,
				Station:     models.StationBar,
				Price:       pricing.SpiritShotPrice(cost),
			})
		}
	}

	for _, item := range expanded {
		stats.TotalItems++
		switch item.ItemType {
		case models.ItemTypeFood:
			stats.FoodItems++
		case models.ItemTypeDrink:
			stats.DrinkItems++
		}
		switch {
		case strings.Contains(item.Category, "Beer"):
			stats.Beers++
		case strings.Contains(item.Category, "Wine"):
			stats.Wines++
		case strings.Contains(item.Category, "Spirit"):
			stats.Spirits++
		}
	}
	return expanded, stats
}

func itemsIn(inventory []models.InventoryItem, category string) []models.InventoryItem {
	var out []models.InventoryItem
	for _, item := range inventory {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
