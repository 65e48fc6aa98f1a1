package services

import (
	"fmt"

	"seedgen/internal/models"
	"seedgen/internal/seeddata"
	"seedgen/internal/sku"
	"seedgen/pkg/utils"
)

// Default stock parameters for items loaded from the raw stock sheet.
// The sheet carries no reorder policy, so every item gets the same one.
const (
	defaultReorderLevel = 5
	defaultReorderQty   = 10
	defaultInitialStock = 20
)

// InventoryService builds the per-concept inventory catalogs.
type InventoryService interface {
	BuildCatalog(concept models.Concept) (*models.InventoryDocument, error)
}

type inventoryService struct{}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService() InventoryService {
	return &inventoryService{}
}

func (s *inventoryService) BuildCatalog(concept models.Concept) (*models.InventoryDocument, error) {
	switch concept {
	case models.ConceptCafesserie:
		return &models.InventoryDocument{
			Comment: "Cafesserie Inventory - Deterministic items for coffee shop operations",
			Items:   seeddata.CafesserieInventory(),
		}, nil
	case models.ConceptTapas:
		return &models.InventoryDocument{
			Items: buildTapasInventory(seeddata.ParseRows(seeddata.TapasInventoryRaw)),
		}, nil
	}
	return nil, fmt.Errorf("no inventory source for concept %q", concept)
}

// buildTapasInventory assigns deterministic SKUs to the parsed stock-sheet
// rows. Counters run per category code in row order, so the same sheet always
// yields the same SKUs.
func buildTapasInventory(rows []seeddata.RawRow) []models.InventoryItem {
	alloc := sku.NewAllocator("INV")
	items := make([]models.InventoryItem, 0, len(rows))
	for _, row := range rows {
		code, known := sku.CodeFor(row.Category)
		if !known {
			utils.LogWarn("Inventory category outside SKU mapping", map[string]interface{}{
				"category": row.Category,
				"item":     row.Name,
			})
		}
		initialStock := int64(0)
		if row.Available {
			initialStock = defaultInitialStock
		}
		items = append(items, models.InventoryItem{
			Sku:          alloc.Next(code),
			Name:         row.Name,
			Category:     row.Category,
			Unit:         row.Unit,
			UnitCost:     row.Cost,
			ReorderLevel: defaultReorderLevel,
			ReorderQty:   defaultReorderQty,
			InitialStock: initialStock,
		})
	}
	return items
}
