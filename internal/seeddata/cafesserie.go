package seeddata

import "seedgen/internal/models"

func cost(v int64) *int64 { return &v }

// CafesserieInventory returns the fixed inventory catalog backing the
// Cafesserie menu. The set is deterministic by construction: SKUs are
// hand-assigned and recipes reference them directly.
func CafesserieInventory() []models.InventoryItem {
	return []models.InventoryItem{
		// Coffee & espresso
		{Sku: "CAF-INV-COFF-0001", Name: "Espresso Coffee Beans (Arabica)", Category: "Coffee", Unit: "KG", UnitCost: cost(45000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 10},
		{Sku: "CAF-INV-COFF-0002", Name: "Decaf Coffee Beans", Category: "Coffee", Unit: "KG", UnitCost: cost(48000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 3},

		// Dairy
		{Sku: "CAF-INV-DARY-0001", Name: "Whole Milk", Category: "Dairy", Unit: "LTR", UnitCost: cost(3500), ReorderLevel: 10, ReorderQty: 30, InitialStock: 40},
		{Sku: "CAF-INV-DARY-0002", Name: "Almond Milk", Category: "Dairy", Unit: "LTR", UnitCost: cost(8000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 12},
		{Sku: "CAF-INV-DARY-0003", Name: "Oat Milk", Category: "Dairy", Unit: "LTR", UnitCost: cost(9000), ReorderLevel: 3, ReorderQty: 8, InitialStock: 8},
		{Sku: "CAF-INV-DARY-0004", Name: "Heavy Cream", Category: "Dairy", Unit: "LTR", UnitCost: cost(12000), ReorderLevel: 3, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-DARY-0005", Name: "Butter (Unsalted)", Category: "Dairy", Unit: "KG", UnitCost: cost(16000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 5},
		{Sku: "CAF-INV-DARY-0006", Name: "Cream Cheese", Category: "Dairy", Unit: "KG", UnitCost: cost(18000), ReorderLevel: 2, ReorderQty: 3, InitialStock: 4},
		{Sku: "CAF-INV-DARY-0007", Name: "Cheddar Cheese", Category: "Dairy", Unit: "KG", UnitCost: cost(22000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 2},
		{Sku: "CAF-INV-DARY-0008", Name: "Mozzarella Cheese", Category: "Dairy", Unit: "KG", UnitCost: cost(20000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 2},
		{Sku: "CAF-INV-DARY-0009", Name: "Vanilla Ice Cream", Category: "Dairy", Unit: "LTR", UnitCost: cost(15000), ReorderLevel: 2, ReorderQty: 4, InitialStock: 5},
		{Sku: "CAF-INV-DARY-0010", Name: "Yoghurt (Plain)", Category: "Dairy", Unit: "KG", UnitCost: cost(6000), ReorderLevel: 3, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-DARY-0011", Name: "Eggs (Fresh)", Category: "Dairy", Unit: "TRAY", UnitCost: cost(13000), ReorderLevel: 3, ReorderQty: 5, InitialStock: 8},

		// Syrups & flavorings
		{Sku: "CAF-INV-SYRP-0001", Name: "Vanilla Syrup", Category: "Syrups", Unit: "BTL", UnitCost: cost(12000), ReorderLevel: 2, ReorderQty: 6, InitialStock: 6},
		{Sku: "CAF-INV-SYRP-0002", Name: "Caramel Syrup", Category: "Syrups", Unit: "BTL", UnitCost: cost(12000), ReorderLevel: 2, ReorderQty: 6, InitialStock: 6},
		{Sku: "CAF-INV-SYRP-0003", Name: "Hazelnut Syrup", Category: "Syrups", Unit: "BTL", UnitCost: cost(13000), ReorderLevel: 1, ReorderQty: 4, InitialStock: 4},
		{Sku: "CAF-INV-SYRP-0004", Name: "Chocolate Syrup", Category: "Syrups", Unit: "BTL", UnitCost: cost(11000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 5},
		{Sku: "CAF-INV-SYRP-0005", Name: "Mint Syrup", Category: "Syrups", Unit: "BTL", UnitCost: cost(12000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 3},
		{Sku: "CAF-INV-SYRP-0006", Name: "Honey (Pure)", Category: "Syrups", Unit: "KG", UnitCost: cost(25000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 3},

		// Tea
		{Sku: "CAF-INV-TEA-0001", Name: "English Breakfast Tea Bags", Category: "Tea", Unit: "BOX", UnitCost: cost(8000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-TEA-0002", Name: "Earl Grey Tea Bags", Category: "Tea", Unit: "BOX", UnitCost: cost(9000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 5},
		{Sku: "CAF-INV-TEA-0003", Name: "Green Tea Bags", Category: "Tea", Unit: "BOX", UnitCost: cost(9500), ReorderLevel: 2, ReorderQty: 5, InitialStock: 5},
		{Sku: "CAF-INV-TEA-0004", Name: "Chamomile Tea Bags", Category: "Tea", Unit: "BOX", UnitCost: cost(10000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 4},
		{Sku: "CAF-INV-TEA-0005", Name: "Peppermint Tea Bags", Category: "Tea", Unit: "BOX", UnitCost: cost(9000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 3},

		// Baking ingredients
		{Sku: "CAF-INV-BAKF-0001", Name: "All-Purpose Flour", Category: "Baking", Unit: "KG", UnitCost: cost(3000), ReorderLevel: 10, ReorderQty: 25, InitialStock: 30},
		{Sku: "CAF-INV-BAKF-0002", Name: "Sugar (White)", Category: "Baking", Unit: "KG", UnitCost: cost(3500), ReorderLevel: 10, ReorderQty: 20, InitialStock: 25},
		{Sku: "CAF-INV-BAKF-0003", Name: "Brown Sugar", Category: "Baking", Unit: "KG", UnitCost: cost(4000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 12},
		{Sku: "CAF-INV-BAKF-0004", Name: "Baking Powder", Category: "Baking", Unit: "KG", UnitCost: cost(5000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 5},
		{Sku: "CAF-INV-BAKF-0005", Name: "Cocoa Powder", Category: "Baking", Unit: "KG", UnitCost: cost(15000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 3},
		{Sku: "CAF-INV-BAKF-0006", Name: "Chocolate Chips", Category: "Baking", Unit: "KG", UnitCost: cost(18000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 5},
		{Sku: "CAF-INV-BAKF-0007", Name: "Vanilla Extract", Category: "Baking", Unit: "BTL", UnitCost: cost(8000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 3},
		{Sku: "CAF-INV-BAKF-0008", Name: "Cinnamon Powder", Category: "Baking", Unit: "KG", UnitCost: cost(12000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 2},

		// Bread & bakery supplies
		{Sku: "CAF-INV-BRED-0001", Name: "White Bread Loaf", Category: "Bread", Unit: "PC", UnitCost: cost(4000), ReorderLevel: 10, ReorderQty: 20, InitialStock: 25},
		{Sku: "CAF-INV-BRED-0002", Name: "Whole Wheat Bread", Category: "Bread", Unit: "PC", UnitCost: cost(4500), ReorderLevel: 8, ReorderQty: 15, InitialStock: 20},
		{Sku: "CAF-INV-BRED-0003", Name: "Croissants (Frozen)", Category: "Bread", Unit: "PC", UnitCost: cost(2000), ReorderLevel: 20, ReorderQty: 50, InitialStock: 60},
		{Sku: "CAF-INV-BRED-0004", Name: "Bagels", Category: "Bread", Unit: "PC", UnitCost: cost(1500), ReorderLevel: 15, ReorderQty: 30, InitialStock: 40},
		{Sku: "CAF-INV-BRED-0005", Name: "Muffin Mix", Category: "Bread", Unit: "KG", UnitCost: cost(8000), ReorderLevel: 3, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-BRED-0006", Name: "Scone Mix", Category: "Bread", Unit: "KG", UnitCost: cost(7500), ReorderLevel: 2, ReorderQty: 4, InitialStock: 5},

		// Produce
		{Sku: "CAF-INV-PROD-0001", Name: "Tomatoes", Category: "Produce", Unit: "KG", UnitCost: cost(3000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 12},
		{Sku: "CAF-INV-PROD-0002", Name: "Lettuce", Category: "Produce", Unit: "PC", UnitCost: cost(2500), ReorderLevel: 5, ReorderQty: 10, InitialStock: 15},
		{Sku: "CAF-INV-PROD-0003", Name: "Cucumber", Category: "Produce", Unit: "KG", UnitCost: cost(3000), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-PROD-0004", Name: "Avocado", Category: "Produce", Unit: "PC", UnitCost: cost(1500), ReorderLevel: 10, ReorderQty: 20, InitialStock: 25},
		{Sku: "CAF-INV-PROD-0005", Name: "Spinach", Category: "Produce", Unit: "KG", UnitCost: cost(4000), ReorderLevel: 3, ReorderQty: 6, InitialStock: 8},
		{Sku: "CAF-INV-PROD-0006", Name: "Carrots", Category: "Produce", Unit: "KG", UnitCost: cost(2500), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-PROD-0007", Name: "Onions", Category: "Produce", Unit: "KG", UnitCost: cost(2000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 15},

		// Fruits
		{Sku: "CAF-INV-FRUT-0001", Name: "Bananas", Category: "Fruits", Unit: "KG", UnitCost: cost(3000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 15},
		{Sku: "CAF-INV-FRUT-0002", Name: "Strawberries", Category: "Fruits", Unit: "KG", UnitCost: cost(12000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-FRUT-0003", Name: "Blueberries", Category: "Fruits", Unit: "KG", UnitCost: cost(15000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 4},
		{Sku: "CAF-INV-FRUT-0004", Name: "Oranges", Category: "Fruits", Unit: "KG", UnitCost: cost(4000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 12},
		{Sku: "CAF-INV-FRUT-0005", Name: "Apples", Category: "Fruits", Unit: "KG", UnitCost: cost(5000), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-FRUT-0006", Name: "Pineapple", Category: "Fruits", Unit: "PC", UnitCost: cost(3500), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-FRUT-0007", Name: "Mango", Category: "Fruits", Unit: "KG", UnitCost: cost(6000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-FRUT-0008", Name: "Watermelon", Category: "Fruits", Unit: "PC", UnitCost: cost(5000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 5},
		{Sku: "CAF-INV-FRUT-0009", Name: "Lemon", Category: "Fruits", Unit: "KG", UnitCost: cost(3500), ReorderLevel: 3, ReorderQty: 5, InitialStock: 8},

		// Proteins
		{Sku: "CAF-INV-PROT-0001", Name: "Chicken Breast", Category: "Proteins", Unit: "KG", UnitCost: cost(18000), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-PROT-0002", Name: "Ham (Sliced)", Category: "Proteins", Unit: "KG", UnitCost: cost(25000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-PROT-0003", Name: "Bacon", Category: "Proteins", Unit: "KG", UnitCost: cost(28000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-PROT-0004", Name: "Tuna (Canned)", Category: "Proteins", Unit: "TIN", UnitCost: cost(8000), ReorderLevel: 5, ReorderQty: 12, InitialStock: 15},
		{Sku: "CAF-INV-PROT-0005", Name: "Smoked Salmon", Category: "Proteins", Unit: "KG", UnitCost: cost(45000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 2},

		// Condiments & sauces
		{Sku: "CAF-INV-COND-0001", Name: "Mayonnaise", Category: "Condiments", Unit: "KG", UnitCost: cost(8000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-COND-0002", Name: "Mustard", Category: "Condiments", Unit: "KG", UnitCost: cost(7000), ReorderLevel: 2, ReorderQty: 4, InitialStock: 5},
		{Sku: "CAF-INV-COND-0003", Name: "Olive Oil", Category: "Condiments", Unit: "LTR", UnitCost: cost(18000), ReorderLevel: 2, ReorderQty: 4, InitialStock: 5},
		{Sku: "CAF-INV-COND-0004", Name: "Balsamic Vinegar", Category: "Condiments", Unit: "BTL", UnitCost: cost(12000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 3},
		{Sku: "CAF-INV-COND-0005", Name: "Pesto Sauce", Category: "Condiments", Unit: "JAR", UnitCost: cost(15000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 3},
		{Sku: "CAF-INV-COND-0006", Name: "Salt", Category: "Condiments", Unit: "KG", UnitCost: cost(1000), ReorderLevel: 3, ReorderQty: 5, InitialStock: 8},
		{Sku: "CAF-INV-COND-0007", Name: "Black Pepper", Category: "Condiments", Unit: "KG", UnitCost: cost(20000), ReorderLevel: 1, ReorderQty: 2, InitialStock: 2},

		// Beverages
		{Sku: "CAF-INV-BEV-0001", Name: "Coca Cola (Bottles)", Category: "Beverages", Unit: "CRATE", UnitCost: cost(18000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 8},
		{Sku: "CAF-INV-BEV-0002", Name: "Sprite (Bottles)", Category: "Beverages", Unit: "CRATE", UnitCost: cost(18000), ReorderLevel: 2, ReorderQty: 5, InitialStock: 6},
		{Sku: "CAF-INV-BEV-0003", Name: "Fanta (Bottles)", Category: "Beverages", Unit: "CRATE", UnitCost: cost(18000), ReorderLevel: 1, ReorderQty: 3, InitialStock: 4},
		{Sku: "CAF-INV-BEV-0004", Name: "Bottled Water", Category: "Beverages", Unit: "CRATE", UnitCost: cost(12000), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-BEV-0005", Name: "Orange Juice (Carton)", Category: "Beverages", Unit: "LTR", UnitCost: cost(8000), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-BEV-0006", Name: "Apple Juice (Carton)", Category: "Beverages", Unit: "LTR", UnitCost: cost(8000), ReorderLevel: 2, ReorderQty: 6, InitialStock: 8},

		// Packaging
		{Sku: "CAF-INV-PKG-0001", Name: "Takeaway Coffee Cups (8oz)", Category: "Packaging", Unit: "PACK", UnitCost: cost(15000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 15},
		{Sku: "CAF-INV-PKG-0002", Name: "Takeaway Coffee Cups (12oz)", Category: "Packaging", Unit: "PACK", UnitCost: cost(18000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 15},
		{Sku: "CAF-INV-PKG-0003", Name: "Cup Lids", Category: "Packaging", Unit: "PACK", UnitCost: cost(8000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 12},
		{Sku: "CAF-INV-PKG-0004", Name: "Paper Bags", Category: "Packaging", Unit: "PACK", UnitCost: cost(12000), ReorderLevel: 3, ReorderQty: 8, InitialStock: 10},
		{Sku: "CAF-INV-PKG-0005", Name: "Napkins", Category: "Packaging", Unit: "PACK", UnitCost: cost(5000), ReorderLevel: 5, ReorderQty: 10, InitialStock: 12},
	}
}
