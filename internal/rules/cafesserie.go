package rules

import "seedgen/internal/models"

// Cafesserie inventory SKUs referenced by the rule table below. The cafe
// catalog is fixed, so rules reference it directly.
const (
	cafBeans      = "CAF-INV-COFF-0001"
	cafMilk       = "CAF-INV-DARY-0001"
	cafWater      = "CAF-INV-BEV-0004"
	cafChocSyrup  = "CAF-INV-SYRP-0004"
	cafCaramel    = "CAF-INV-SYRP-0002"
	cafVanilla    = "CAF-INV-SYRP-0001"
	cafHazelnut   = "CAF-INV-SYRP-0003"
	cafIceCream   = "CAF-INV-DARY-0009"
	cafHoney      = "CAF-INV-SYRP-0006"
	cafYoghurt    = "CAF-INV-DARY-0010"
	cafEggs       = "CAF-INV-DARY-0011"
	cafButter     = "CAF-INV-DARY-0005"
	cafCreamChz   = "CAF-INV-DARY-0006"
	cafCheddar    = "CAF-INV-DARY-0007"
	cafFlour      = "CAF-INV-BAKF-0001"
	cafSugar      = "CAF-INV-BAKF-0002"
	cafCocoa      = "CAF-INV-BAKF-0005"
	cafChocChips  = "CAF-INV-BAKF-0006"
	cafWhiteBread = "CAF-INV-BRED-0001"
	cafWheatBread = "CAF-INV-BRED-0002"
	cafCroissant  = "CAF-INV-BRED-0003"
	cafBagel      = "CAF-INV-BRED-0004"
	cafMuffinMix  = "CAF-INV-BRED-0005"
	cafSconeMix   = "CAF-INV-BRED-0006"
	cafTomato     = "CAF-INV-PROD-0001"
	cafLettuce    = "CAF-INV-PROD-0002"
	cafCucumber   = "CAF-INV-PROD-0003"
	cafAvocado    = "CAF-INV-PROD-0004"
	cafChicken    = "CAF-INV-PROT-0001"
	cafHam        = "CAF-INV-PROT-0002"
	cafBacon      = "CAF-INV-PROT-0003"
	cafTuna       = "CAF-INV-PROT-0004"
	cafSalmon     = "CAF-INV-PROT-0005"
	cafMayo       = "CAF-INV-COND-0001"
	cafOliveOil   = "CAF-INV-COND-0003"
	cafBerries    = "CAF-INV-FRUT-0001"
	cafBlueberry  = "CAF-INV-FRUT-0003"
)

// cafesserieJuiceFruits maps juice-name keywords to the fruit SKU pressed
// for it. Evaluated in this order; unknown juices default to oranges.
var cafesserieJuiceFruits = []struct {
	Keyword string
	Sku     string
}{
	{"Orange", "CAF-INV-FRUT-0004"},
	{"Apple", "CAF-INV-FRUT-0005"},
	{"Pineapple", "CAF-INV-FRUT-0006"},
	{"Mango", "CAF-INV-FRUT-0007"},
	{"Watermelon", "CAF-INV-FRUT-0008"},
}

func cafesserieJuice(item models.MenuItem, _ *Context) ([]models.RecipeIngredient, bool) {
	sku := "CAF-INV-FRUT-0004"
	for _, f := range cafesserieJuiceFruits {
		if NameHas(f.Keyword)(item) {
			sku = f.Sku
			break
		}
	}
	return tmpl(ing(sku, "Fresh Fruit", 300, "G", "For juice")), false
}

// CafesserieTable maps the cafe menu to its fixed inventory catalog.
// Order is significant: "Double Espresso" must be guarded out of the bare
// "Espresso" rule, flavored lattes out of the plain latte rule, and so on.
var CafesserieTable = []Rule{
	// Coffee
	{When: All(Category("coffee"), NameHas("Espresso"), NameLacks("Double")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 9, "G", "Single shot"),
	)},
	{When: All(Category("coffee"), NameHas("Double Espresso")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
	)},
	{When: All(Category("coffee"), NameHas("Americano")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
		ing(cafWater, "Hot Water", 150, "ML", ""),
	)},
	{When: All(Category("coffee"), NameHas("Cappuccino"), NameLacks("Hazelnut")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
		ing(cafMilk, "Milk", 150, "ML", "Steamed & foamed"),
	)},
	{When: All(Category("coffee"), NameHas("Latte"), NameLacks("Caramel", "Vanilla", "Iced")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
		ing(cafMilk, "Milk", 200, "ML", "Steamed"),
	)},
	{When: All(Category("coffee"), NameHas("Flat White")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
		ing(cafMilk, "Milk", 180, "ML", "Microfoam"),
	)},
	{When: All(Category("coffee"), NameHas("Macchiato")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
		ing(cafMilk, "Milk", 30, "ML", "Foam mark"),
	)},
	{When: All(Category("coffee"), NameHas("Mocha"), NameLacks("Iced")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
		ing(cafMilk, "Milk", 180, "ML", "Steamed"),
		ing(cafChocSyrup, "Chocolate Syrup", 20, "ML", ""),
	)},

	// Specialty coffee
	{When: All(Category("specialty-coffee"), NameHas("Caramel Latte")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", ""),
		ing(cafMilk, "Milk", 200, "ML", ""),
		ing(cafCaramel, "Caramel Syrup", 20, "ML", ""),
	)},
	{When: All(Category("specialty-coffee"), NameHas("Vanilla Latte")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", ""),
		ing(cafMilk, "Milk", 200, "ML", ""),
		ing(cafVanilla, "Vanilla Syrup", 20, "ML", ""),
	)},
	{When: All(Category("specialty-coffee"), NameHas("Hazelnut Cappuccino")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", ""),
		ing(cafMilk, "Milk", 150, "ML", ""),
		ing(cafHazelnut, "Hazelnut Syrup", 20, "ML", ""),
	)},
	{When: All(Category("specialty-coffee"), NameHas("Iced Latte")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", ""),
		ing(cafMilk, "Milk", 200, "ML", "Cold"),
	)},
	{When: All(Category("specialty-coffee"), NameHas("Iced Mocha")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", ""),
		ing(cafMilk, "Milk", 180, "ML", "Cold"),
		ing(cafChocSyrup, "Chocolate Syrup", 20, "ML", ""),
	)},
	{When: All(Category("specialty-coffee"), NameHas("Affogato")), Template: tmpl(
		ing(cafBeans, "Coffee Beans", 18, "G", "Double shot"),
		ing(cafIceCream, "Vanilla Ice Cream", 100, "G", ""),
	)},

	// Tea
	{When: All(Category("tea"), NameHas("English Breakfast")), Template: tmpl(
		ing("CAF-INV-TEA-0001", "English Breakfast Tea", 1, "BAG", ""),
	)},
	{When: All(Category("tea"), NameHas("Earl Grey")), Template: tmpl(
		ing("CAF-INV-TEA-0002", "Earl Grey Tea", 1, "BAG", ""),
	)},
	{When: All(Category("tea"), NameHas("Green Tea")), Template: tmpl(
		ing("CAF-INV-TEA-0003", "Green Tea", 1, "BAG", ""),
	)},
	{When: All(Category("tea"), NameHas("Chamomile")), Template: tmpl(
		ing("CAF-INV-TEA-0004", "Chamomile Tea", 1, "BAG", ""),
	)},
	{When: All(Category("tea"), NameHas("Peppermint")), Template: tmpl(
		ing("CAF-INV-TEA-0005", "Peppermint Tea", 1, "BAG", ""),
	)},

	// Breakfast
	{When: All(Category("breakfast"), NameHas("Croissant")), Template: tmpl(
		ing(cafCroissant, "Croissant", 1, "PC", "Baked"),
	)},
	{When: All(Category("breakfast"), NameHas("Bagel"), NameHas("Smoked Salmon")), Template: tmpl(
		ing(cafBagel, "Bagel", 1, "PC", ""),
		ing(cafCreamChz, "Cream Cheese", 30, "G", ""),
		ing(cafSalmon, "Smoked Salmon", 50, "G", ""),
	)},
	{When: All(Category("breakfast"), NameHas("Bagel")), Template: tmpl(
		ing(cafBagel, "Bagel", 1, "PC", ""),
		ing(cafCreamChz, "Cream Cheese", 30, "G", ""),
	)},
	{When: All(Category("breakfast"), NameHas("Avocado Toast")), Template: tmpl(
		ing(cafWheatBread, "Whole Wheat Bread", 2, "SLICES", "Toasted"),
		ing(cafAvocado, "Avocado", 1, "PC", ""),
		ing(cafEggs, "Eggs", 1, "PC", "Optional"),
	)},
	{When: All(Category("breakfast"), NameAny("Yogurt Parfait", "Yoghurt")), Template: tmpl(
		ing(cafYoghurt, "Yoghurt", 200, "G", ""),
		ing(cafBerries, "Mixed Berries", 80, "G", ""),
		ing(cafHoney, "Honey", 15, "ML", ""),
	)},
	{When: All(Category("breakfast"), NameAny("Eggs", "Omelette")), Template: tmpl(
		ing(cafEggs, "Eggs", 2, "PC", ""),
		ing(cafWhiteBread, "Toast", 2, "SLICES", ""),
	)},

	// Pastries
	{When: All(Category("pastries"), NameHas("Muffin")), Template: tmpl(
		ing(cafMuffinMix, "Muffin Mix", 120, "G", ""),
		ing(cafEggs, "Eggs", 1, "PC", ""),
		ing(cafBlueberry, "Blueberries", 30, "G", "Optional"),
	)},
	{When: All(Category("pastries"), NameHas("Scone")), Template: tmpl(
		ing(cafSconeMix, "Scone Mix", 100, "G", ""),
	)},
	{When: All(Category("pastries"), NameHas("Brownie")), Template: tmpl(
		ing(cafFlour, "Flour", 80, "G", ""),
		ing(cafCocoa, "Cocoa", 40, "G", ""),
		ing(cafChocChips, "Chocolate Chips", 30, "G", ""),
		ing(cafEggs, "Eggs", 2, "PC", ""),
		ing(cafButter, "Butter", 60, "G", ""),
	)},
	{When: All(Category("pastries"), NameHas("Cookie")), Template: tmpl(
		ing(cafFlour, "Flour", 60, "G", ""),
		ing(cafChocChips, "Chocolate Chips", 40, "G", ""),
		ing(cafSugar, "Sugar", 30, "G", ""),
		ing(cafButter, "Butter", 40, "G", ""),
	)},

	// Sandwiches
	{When: All(Category("sandwiches"), NameHas("Chicken")), Template: tmpl(
		ing(cafWhiteBread, "Bread", 2, "SLICES", ""),
		ing(cafChicken, "Chicken Breast", 100, "G", ""),
		ing(cafLettuce, "Lettuce", 20, "G", ""),
		ing(cafTomato, "Tomato", 30, "G", ""),
		ing(cafMayo, "Mayo", 15, "G", ""),
	)},
	{When: All(Category("sandwiches"), NameAny("Ham", "BLT")), Template: tmpl(
		ing(cafWhiteBread, "Bread", 2, "SLICES", ""),
		ing(cafHam, "Ham", 60, "G", ""),
		ing(cafBacon, "Bacon", 40, "G", "Optional"),
		ing(cafLettuce, "Lettuce", 20, "G", ""),
		ing(cafTomato, "Tomato", 30, "G", ""),
	)},
	{When: All(Category("sandwiches"), NameHas("Tuna")), Template: tmpl(
		ing(cafWhiteBread, "Bread", 2, "SLICES", ""),
		ing(cafTuna, "Tuna", 1, "TIN", ""),
		ing(cafMayo, "Mayo", 20, "G", ""),
		ing(cafLettuce, "Lettuce", 20, "G", ""),
	)},
	{When: Category("sandwiches"), Confirm: true, Template: tmpl(
		ing(cafWhiteBread, "Bread", 2, "SLICES", ""),
		ing(cafCheddar, "Cheese", 40, "G", ""),
		ing(cafLettuce, "Lettuce", 20, "G", ""),
		ing(cafTomato, "Tomato", 30, "G", ""),
	)},

	// Salads
	{When: All(Category("salads"), NameHas("Caesar")), Template: tmpl(
		ing(cafLettuce, "Lettuce", 150, "G", ""),
		ing(cafChicken, "Chicken", 80, "G", "Optional"),
		ing("CAF-INV-DARY-0004", "Parmesan", 20, "G", ""),
	)},
	{When: All(Category("salads"), NameHas("Greek")), Template: tmpl(
		ing(cafLettuce, "Lettuce", 100, "G", ""),
		ing(cafTomato, "Tomato", 60, "G", ""),
		ing(cafCucumber, "Cucumber", 50, "G", ""),
		ing("CAF-INV-DARY-0008", "Feta Cheese", 40, "G", ""),
	)},
	{When: Category("salads"), Template: tmpl(
		ing(cafLettuce, "Mixed Greens", 120, "G", ""),
		ing(cafTomato, "Tomato", 40, "G", ""),
		ing(cafCucumber, "Cucumber", 40, "G", ""),
		ing(cafOliveOil, "Olive Oil", 10, "ML", "Dressing"),
	)},

	// Hot meals
	{When: Category("mains"), Confirm: true, Template: tmpl(
		ing(cafChicken, "Protein", 150, "G", ""),
		ing(cafTomato, "Vegetables", 100, "G", ""),
	)},

	// Desserts
	{When: All(Category("desserts"), NameAny("Cake", "Cheesecake")), Template: tmpl(
		ing(cafFlour, "Flour", 80, "G", ""),
		ing(cafSugar, "Sugar", 60, "G", ""),
		ing(cafEggs, "Eggs", 2, "PC", ""),
		ing(cafCreamChz, "Cream Cheese", 100, "G", "Optional"),
	)},
	{When: All(Category("desserts"), NameHas("Ice Cream")), Template: tmpl(
		ing(cafIceCream, "Ice Cream", 150, "G", ""),
	)},

	// Smoothies
	{When: Category("smoothies"), Template: tmpl(
		ing(cafBerries, "Mixed Fruit", 200, "G", ""),
		ing(cafYoghurt, "Yoghurt", 100, "G", ""),
		ing(cafHoney, "Honey", 15, "ML", ""),
	)},

	// Fresh juice
	{When: Category("fresh-juice"), Resolve: cafesserieJuice},

	// Cold drinks
	{When: All(Category("cold-drinks"), NameAny("Coca Cola", "Coke")), Template: tmpl(
		ing("CAF-INV-BEV-0001", "Coca Cola", 1, "BTL", ""),
	)},
	{When: All(Category("cold-drinks"), NameHas("Sprite")), Template: tmpl(
		ing("CAF-INV-BEV-0002", "Sprite", 1, "BTL", ""),
	)},
	{When: All(Category("cold-drinks"), NameHas("Fanta")), Template: tmpl(
		ing("CAF-INV-BEV-0003", "Fanta", 1, "BTL", ""),
	)},
	{When: All(Category("cold-drinks"), NameHas("Water")), Template: tmpl(
		ing(cafWater, "Water", 1, "BTL", ""),
	)},
}
