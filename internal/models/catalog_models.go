package models

import "fmt"

// Concept identifies one of the restaurant concepts the generator serves.
type Concept string

const (
	ConceptCafesserie Concept = "cafesserie"
	ConceptTapas      Concept = "tapas"
)

// ParseConcept validates a concept name coming from the outside (URL params).
func ParseConcept(s string) (Concept, error) {
	switch Concept(s) {
	case ConceptCafesserie, ConceptTapas:
		return Concept(s), nil
	}
	return "", fmt.Errorf("unknown concept %q", s)
}

// Item types for menu entries.
const (
	ItemTypeFood  = "FOOD"
	ItemTypeDrink = "DRINK"
)

// StationBar is the fulfillment station tag for generated drink items.
const StationBar = "BAR"

// InventoryItem is one stockable item in a concept's inventory catalog.
// UnitCost is nil when the source data carried no parseable cost.
type InventoryItem struct {
	Sku          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	UnitCost     *int64 `json:"unitCost"`
	ReorderLevel int64  `json:"reorderLevel"`
	ReorderQty   int64  `json:"reorderQty"`
	InitialStock int64  `json:"initialStock"`
}

// MenuItem is one sellable item on a concept's menu.
type MenuItem struct {
	Sku         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ItemType    string `json:"itemType"`
	Station     string `json:"station"`
	Price       int64  `json:"price"`
}

// RecipeIngredient is one line of a recipe. InventorySku is an unvalidated
// reference; reconciliation reports dangling ones after generation.
type RecipeIngredient struct {
	InventorySku string `json:"inventorySku"`
	Name         string `json:"name"`
	Qty          int64  `json:"qty"`
	Unit         string `json:"unit"`
	Note         string `json:"note"`
}

// Recipe maps a menu item to the inventory ingredients consumed to produce it.
type Recipe struct {
	MenuSku           string             `json:"menuSku"`
	MenuName          string             `json:"menuName"`
	Ingredients       []RecipeIngredient `json:"ingredients"`
	NeedsConfirmation bool               `json:"needsConfirmation"`
}

// InventoryDocument is the on-disk shape of an inventory catalog file.
type InventoryDocument struct {
	Comment string          `json:"comment,omitempty"`
	Items   []InventoryItem `json:"items"`
}

// MenuDocument is the on-disk shape of a menu file.
type MenuDocument struct {
	Comment string     `json:"comment,omitempty"`
	Items   []MenuItem `json:"items"`
}
