package rules

import (
	"strings"

	"seedgen/internal/models"
)

// Resolvers for the drink classes that map menu items back onto the parsed
// stock-sheet inventory. A failed lookup falls back to a generic placeholder
// SKU and flags the recipe for confirmation.

func tapasBeer(item models.MenuItem, ctx *Context) ([]models.RecipeIngredient, bool) {
	if inv, ok := ctx.FindByNameInMenu(item.Name); ok {
		return tmpl(ing(inv.Sku, inv.Name, 1, "BTL", "")), false
	}
	return tmpl(ing("INV-BEER-0001", "Nile Special", 1, "BTL", "Generic mapping")), true
}

func tapasWine(item models.MenuItem, ctx *Context) ([]models.RecipeIngredient, bool) {
	glass := strings.Contains(item.Name, "(Glass)")
	if inv, ok := ctx.FindWine(item.Name); ok {
		if glass {
			return tmpl(ing(inv.Sku, inv.Name, 175, "ML", "")), false
		}
		return tmpl(ing(inv.Sku, inv.Name, 1, "BTL", "")), false
	}
	qty, unit := int64(1), "BTL"
	if glass {
		qty, unit = 175, "ML"
	}
	return tmpl(ing("INV-WINE-0001", "Generic Wine", qty, unit, "Generic mapping")), true
}

func tapasSpirit(item models.MenuItem, ctx *Context) ([]models.RecipeIngredient, bool) {
	if inv, ok := ctx.FindSpirit(item.Name); ok {
		return tmpl(ing(inv.Sku, inv.Name, 35, "ML", "")), false
	}
	return tmpl(ing("INV-VODK-0001", "Generic Spirit", 35, "ML", "Generic mapping")), true
}

func tapasSour(item models.MenuItem, _ *Context) ([]models.RecipeIngredient, bool) {
	base := "INV-GIN-0002"
	if strings.Contains(item.Name, "Whiskey") {
		base = "INV-WHSK-0001"
	}
	return tmpl(
		ing(base, "Base Spirit", 50, "ML", ""),
		ing("INV-FRUT-0003", "Lemon Juice", 25, "ML", ""),
		ing("INV-SALT-0003", "Sugar Syrup", 15, "ML", ""),
	), false
}

// tapasJuiceFruits maps juice keywords, lowercased, to the fruit SKU.
var tapasJuiceFruits = []struct {
	Keyword string
	Sku     string
}{
	{"orange", "INV-JUCE-0001"},
	{"pineapple", "INV-FRUT-0005"},
	{"passion", "INV-FRUT-0006"},
	{"watermelon", "INV-FRUT-0007"},
	{"mango", "INV-FRUT-0008"},
}

func tapasJuice(item models.MenuItem, _ *Context) ([]models.RecipeIngredient, bool) {
	sku := "INV-FRUT-0005"
	lower := strings.ToLower(item.Name)
	for _, f := range tapasJuiceFruits {
		if strings.Contains(lower, f.Keyword) {
			sku = f.Sku
			break
		}
	}
	return tmpl(ing(sku, "Fresh Fruit", 300, "G", "For juice")), false
}

func tapasBurger(item models.MenuItem, _ *Context) ([]models.RecipeIngredient, bool) {
	meats := []struct {
		Keyword string
		Sku     string
	}{
		{"Beef", "INV-MEAT-0003"},
		{"Chicken", "INV-CHKN-0001"},
		{"Pork", "INV-PORK-0005"},
	}
	meat := "INV-MEAT-0003"
	for _, m := range meats {
		if strings.Contains(item.Name, m.Keyword) {
			meat = m.Sku
			break
		}
	}
	return tmpl(
		ing(meat, "Patty", 150, "G", ""),
		ing("INV-BAKF-0001", "Burger Bun", 1, "PCS", ""),
		ing("INV-DARY-0001", "Cheese", 30, "G", ""),
		ing("INV-VEGT-0001", "Lettuce", 20, "G", ""),
		ing("INV-VEGT-0002", "Tomato", 30, "G", ""),
		ing("INV-VEGT-0003", "Onion", 20, "G", ""),
		ing("INV-VEGT-0006", "Fries", 150, "G", "Side"),
		ing("INV-SAUC-0008", "Mayo", 15, "G", ""),
		ing("INV-SAUC-0007", "Ketchup", 15, "G", ""),
	), false
}

func tapasPasta(item models.MenuItem, _ *Context) ([]models.RecipeIngredient, bool) {
	pasta := "INV-CERE-0003"
	if strings.Contains(item.Name, "Penne") {
		pasta = "INV-CERE-0002"
	}
	return tmpl(
		ing(pasta, "Pasta", 200, "G", ""),
		ing("INV-SAUC-0003", "Tomato Sauce", 100, "G", ""),
		ing("INV-DARY-0004", "Parmesan", 20, "G", ""),
		ing("INV-VEGT-0010", "Garlic", 5, "G", ""),
		ing("INV-OILS-0001", "Olive Oil", 10, "ML", ""),
	), false
}

// TapasTable maps the expanded Tapas menu to inventory. Drink classes route
// through resolvers that look up the live stock-sheet catalog; cocktails,
// mocktails and food use fixed templates. Ingredient SKUs outside the parsed
// catalog are unvalidated references that the reconciliation pass reports.
var TapasTable = []Rule{
	// Drinks with 1:1 inventory mappings
	{When: CategoryHas("Beer", "Cider"), Resolve: tapasBeer},
	{When: CategoryHas("Wine"), Resolve: tapasWine},
	{When: CategoryHas("Spirit"), Resolve: tapasSpirit},

	// Cocktails
	{When: All(Category("Cocktails"), NameHas("Martini"), NameHas("Dirty")), Template: tmpl(
		ing("INV-VODK-0001", "Vodka", 60, "ML", ""),
		ing("INV-OILS-0001", "Olive Brine", 15, "ML", ""),
		ing("INV-VEGT-0007", "Olives", 3, "PCS", ""),
	)},
	{When: All(Category("Cocktails"), NameHas("Martini")), Template: tmpl(
		ing("INV-GIN-0002", "Gin", 60, "ML", ""),
		ing("INV-VEGT-0007", "Olives", 2, "PCS", ""),
	)},
	{When: All(Category("Cocktails"), NameHas("Long Island")), Template: tmpl(
		ing("INV-VODK-0001", "Vodka", 15, "ML", ""),
		ing("INV-GIN-0001", "Gin", 15, "ML", ""),
		ing("INV-RUM-0001", "Rum", 15, "ML", ""),
		ing("INV-TEQL-0001", "Tequila", 15, "ML", ""),
		ing("INV-SODA-0001", "Cola", 100, "ML", ""),
		ing("INV-FRUT-0003", "Lemon", 20, "ML", "Juice"),
	)},
	{When: All(Category("Cocktails"), NameHas("Old Fashioned")), Template: tmpl(
		ing("INV-WHSK-0002", "Bourbon", 60, "ML", ""),
		ing("INV-MIXR-0001", "Bitters", 3, "ML", ""),
		ing("INV-SALT-0003", "Sugar", 5, "G", ""),
	)},
	{When: All(Category("Cocktails"), NameAny("Whiskey Sour", "Gin Sour")), Resolve: tapasSour},
	{When: All(Category("Cocktails"), NameHas("Mojito")), Template: tmpl(
		ing("INV-RUM-0002", "White Rum", 50, "ML", ""),
		ing("INV-VEGT-0012", "Mint", 10, "G", ""),
		ing("INV-FRUT-0004", "Lime", 25, "ML", "Juice"),
		ing("INV-SALT-0003", "Sugar", 10, "G", ""),
		ing("INV-SODA-0005", "Soda Water", 100, "ML", ""),
	)},
	{When: All(Category("Cocktails"), NameHas("Margarita")), Template: tmpl(
		ing("INV-TEQL-0002", "Tequila", 50, "ML", ""),
		ing("INV-CREM-0004", "Cointreau", 25, "ML", ""),
		ing("INV-FRUT-0004", "Lime Juice", 25, "ML", ""),
		ing("INV-SALT-0001", "Salt", 2, "G", "Rim"),
	)},
	{When: Category("Cocktails"), Confirm: true, Template: tmpl(
		ing("INV-VODK-0001", "Base Spirit", 50, "ML", ""),
		ing("INV-FRUT-0003", "Citrus", 20, "ML", ""),
		ing("INV-SALT-0003", "Sweetener", 10, "ML", ""),
	)},

	// Mocktails
	{When: All(Category("Mocktails"), NameHas("Virgin Mojito")), Template: tmpl(
		ing("INV-VEGT-0012", "Mint", 10, "G", ""),
		ing("INV-FRUT-0004", "Lime Juice", 30, "ML", ""),
		ing("INV-SALT-0003", "Sugar", 15, "G", ""),
		ing("INV-SODA-0005", "Soda Water", 200, "ML", ""),
	)},
	{When: Category("Mocktails"), Confirm: true, Template: tmpl(
		ing("INV-FRUT-0005", "Fresh Fruit", 100, "G", ""),
		ing("INV-JUCE-0001", "Juice", 150, "ML", ""),
		ing("INV-SALT-0003", "Sugar", 10, "G", ""),
	)},

	// Soft drinks, juices, milkshakes, smoothies
	{When: All(CategoryHas("Soft Drink", "Juice", "Milkshake", "Smoothie"), NameHas("Water")), Template: tmpl(
		ing("INV-MINR-0001", "Bottled Water", 1, "BTL", ""),
	)},
	{When: All(CategoryHas("Soft Drink", "Juice", "Milkshake", "Smoothie"), NameAny("Soda", "Cola", "Sprite", "Fanta")), Template: tmpl(
		ing("INV-SODA-0001", "Soda", 1, "BTL", ""),
	)},
	{When: All(CategoryHas("Soft Drink", "Juice", "Milkshake", "Smoothie"), NameHas("Red Bull")), Template: tmpl(
		ing("INV-MINR-0002", "Red Bull", 1, "CAN", ""),
	)},
	{When: All(CategoryHas("Soft Drink", "Juice", "Milkshake", "Smoothie"), NameHas("Milkshake")), Template: tmpl(
		ing("INV-DARY-0006", "Milk", 250, "ML", ""),
		ing("INV-DARY-0011", "Ice Cream", 100, "G", ""),
		ing("INV-SYRP-0001", "Flavored Syrup", 30, "ML", ""),
	)},
	{When: All(CategoryHas("Soft Drink", "Juice", "Milkshake", "Smoothie"), NameHas("Smoothie")), Template: tmpl(
		ing("INV-FRUT-0005", "Mixed Fruit", 200, "G", ""),
		ing("INV-DARY-0007", "Yoghurt", 100, "ML", ""),
		ing("INV-SALT-0004", "Honey", 15, "ML", ""),
	)},
	{When: All(CategoryHas("Soft Drink", "Juice", "Milkshake", "Smoothie"), NameHasFold("juice")), Resolve: tapasJuice},
	{When: CategoryHas("Soft Drink", "Juice", "Milkshake", "Smoothie"), Confirm: true, Template: tmpl(
		ing("INV-SODA-0001", "Generic Beverage", 1, "BTL", ""),
	)},

	// Hot beverages
	{When: All(CategoryHas("Hot Beverage"), NameHas("Tea")), Template: tmpl(
		ing("INV-COFF-0003", "Tea Bag", 1, "PCS", ""),
		ing("INV-MINR-0001", "Hot Water", 250, "ML", ""),
	)},
	{When: All(CategoryHas("Hot Beverage"), NameAny("Latte", "Cappuccino")), Template: tmpl(
		ing("INV-COFF-0001", "Coffee Beans", 18, "G", "Double shot"),
		ing("INV-DARY-0006", "Milk", 200, "ML", "Steamed"),
	)},
	{When: All(CategoryHas("Hot Beverage"), NameAny("Coffee", "Espresso", "Americano"), NameHas("Mocha")), Template: tmpl(
		ing("INV-COFF-0001", "Coffee Beans", 18, "G", ""),
		ing("INV-DARY-0006", "Milk", 150, "ML", ""),
		ing("INV-COFF-0004", "Chocolate", 20, "G", ""),
	)},
	{When: All(CategoryHas("Hot Beverage"), NameAny("Coffee", "Espresso", "Americano")), Template: tmpl(
		ing("INV-COFF-0001", "Coffee Beans", 18, "G", "Double shot"),
		ing("INV-MINR-0001", "Hot Water", 150, "ML", ""),
	)},
	{When: All(CategoryHas("Hot Beverage"), NameHas("Hot Chocolate")), Template: tmpl(
		ing("INV-COFF-0004", "Drinking Chocolate", 30, "G", ""),
		ing("INV-DARY-0006", "Milk", 250, "ML", "Hot"),
	)},
	{When: CategoryHas("Hot Beverage"), Confirm: true, Template: tmpl(
		ing("INV-COFF-0002", "Instant Coffee", 5, "G", ""),
		ing("INV-MINR-0001", "Hot Water", 200, "ML", ""),
	)},

	// Food
	{When: All(Food(), CategoryHas("Breakfast"), NameHas("English Breakfast")), Template: tmpl(
		ing("INV-CHKN-0004", "Eggs", 2, "PCS", ""),
		ing("INV-PORK-0006", "Pork Sausage", 100, "G", ""),
		ing("INV-PORK-0001", "Bacon", 60, "G", ""),
		ing("INV-SAUC-0006", "Baked Beans", 80, "G", ""),
		ing("INV-VEGT-0005", "Mushrooms", 40, "G", ""),
		ing("INV-BAKF-0001", "Toast", 2, "SLICES", ""),
		ing("INV-VEGT-0002", "Tomato", 50, "G", "Grilled"),
		ing("INV-VEGT-0006", "Potato", 100, "G", "Wedges"),
	)},
	{When: All(Food(), CategoryHas("Breakfast"), NameAny("Healthy Breakfast", "Yoghurt", "Yogurt")), Template: tmpl(
		ing("INV-DARY-0008", "Vanilla Yoghurt", 200, "ML", ""),
		ing("INV-CERE-0004", "Muesli", 50, "G", ""),
		ing("INV-FRUT-0005", "Mixed Fruit", 100, "G", ""),
		ing("INV-SALT-0004", "Honey", 15, "ML", ""),
	)},
	{When: All(Food(), CategoryHas("Breakfast"), NameHas("Pancake")), Template: tmpl(
		ing("INV-BAKF-0002", "Flour", 120, "G", ""),
		ing("INV-CHKN-0004", "Eggs", 1, "PCS", ""),
		ing("INV-DARY-0006", "Milk", 150, "ML", ""),
		ing("INV-SYRP-0002", "Pancake Syrup", 30, "ML", ""),
		ing("INV-FRUT-0002", "Banana", 1, "PCS", ""),
		ing("INV-SALT-0004", "Honey", 10, "ML", ""),
	)},
	{When: All(Food(), CategoryHas("Breakfast"), NameHas("Avocado")), Template: tmpl(
		ing("INV-BAKF-0001", "Bread", 100, "G", "Toasted"),
		ing("INV-VEGT-0007", "Avocado", 1, "PCS", ""),
		ing("INV-CHKN-0004", "Eggs", 2, "PCS", ""),
		ing("INV-VEGT-0002", "Tomato", 30, "G", ""),
	)},
	{When: All(Food(), CategoryHas("Breakfast"), NameHas("Fruit Salad")), Template: tmpl(
		ing("INV-FRUT-0005", "Pineapple", 80, "G", ""),
		ing("INV-FRUT-0007", "Watermelon", 80, "G", ""),
		ing("INV-FRUT-0008", "Mango", 60, "G", ""),
		ing("INV-FRUT-0002", "Banana", 1, "PCS", ""),
		ing("INV-FRUT-0003", "Lemon Juice", 10, "ML", ""),
		ing("INV-SALT-0004", "Honey", 15, "ML", ""),
	)},
	{When: All(Food(), CategoryHas("Breakfast")), Confirm: true, Template: tmpl(
		ing("INV-CHKN-0004", "Eggs", 2, "PCS", ""),
		ing("INV-PORK-0006", "Sausage", 80, "G", ""),
		ing("INV-BAKF-0001", "Toast", 2, "SLICES", ""),
		ing("INV-VEGT-0002", "Tomato", 40, "G", ""),
	)},
	{When: All(Food(), Any(CategoryHas("Burger"), NameHas("Burger"))), Resolve: tapasBurger},
	{When: All(Food(), Any(NameHas("Wing"), NameHasFold("wings"))), Template: tmpl(
		ing("INV-CHKN-0002", "Chicken Wings", 250, "G", ""),
		ing("INV-SAUC-0001", "BBQ Sauce", 30, "G", ""),
		ing("INV-SPCE-0001", "Spices", 5, "G", ""),
	)},
	{When: All(Food(), Any(CategoryHas("Pasta"), NameHasFold("pasta"))), Resolve: tapasPasta},
	{When: All(Food(), Any(CategoryHas("Fish"), NameHasFold("fish"))), Template: tmpl(
		ing("INV-FISH-0001", "Fish Fillet", 200, "G", ""),
		ing("INV-VEGT-0006", "Potato", 150, "G", ""),
		ing("INV-VEGT-0001", "Lettuce", 30, "G", ""),
		ing("INV-FRUT-0003", "Lemon", 20, "G", ""),
	)},
	{When: All(Food(), Any(CategoryHas("Salad"), NameHasFold("salad"))), Template: tmpl(
		ing("INV-VEGT-0001", "Lettuce", 100, "G", ""),
		ing("INV-VEGT-0002", "Tomato", 60, "G", ""),
		ing("INV-VEGT-0008", "Cucumber", 50, "G", ""),
		ing("INV-VEGT-0003", "Onion", 20, "G", ""),
		ing("INV-OILS-0001", "Olive Oil", 15, "ML", "Dressing"),
	)},
	{When: All(Food(), CategoryHas("Dessert"), NameHasFold("ice cream")), Template: tmpl(
		ing("INV-DARY-0011", "Ice Cream", 150, "G", ""),
		ing("INV-SYRP-0001", "Chocolate Syrup", 20, "ML", ""),
	)},
	{When: All(Food(), CategoryHas("Dessert")), Confirm: true, Template: tmpl(
		ing("INV-BAKF-0002", "Flour", 80, "G", ""),
		ing("INV-SALT-0003", "Sugar", 60, "G", ""),
		ing("INV-CHKN-0004", "Eggs", 1, "PCS", ""),
		ing("INV-DARY-0010", "Butter", 40, "G", ""),
	)},
	{When: Food(), Confirm: true, Template: tmpl(
		ing("INV-MEAT-0003", "Protein", 150, "G", ""),
		ing("INV-VEGT-0006", "Vegetables", 100, "G", ""),
		ing("INV-CERE-0001", "Starch", 100, "G", ""),
	)},
}
