// Package rules implements the recipe rule engine: ordered tables of
// pattern-matching rules that map a menu item to its ingredient breakdown.
// Rules are plain data records evaluated top to bottom; the first match wins,
// so table order encodes priority.
package rules

import (
	"strings"

	"seedgen/internal/models"
)

// Matcher decides whether a rule applies to a menu item.
type Matcher func(models.MenuItem) bool

// Resolver builds ingredients dynamically, typically via a live inventory
// lookup. It returns the ingredient list and whether the result is a
// low-confidence mapping that needs operator confirmation.
type Resolver func(models.MenuItem, *Context) ([]models.RecipeIngredient, bool)

// Rule is one entry of a rule table. Exactly one of Template or Resolve is
// set; Confirm applies to Template rules only (Resolvers report their own
// confidence).
type Rule struct {
	When     Matcher
	Template []models.RecipeIngredient
	Resolve  Resolver
	Confirm  bool
}

// Context carries the inventory catalog visible to resolver rules.
// Lookups iterate in catalog order so matches are deterministic.
type Context struct {
	items []models.InventoryItem
}

// NewContext builds a lookup context over an inventory catalog.
func NewContext(items []models.InventoryItem) *Context {
	return &Context{items: items}
}

// FindByNameInMenu returns the first inventory item whose name occurs,
// case-insensitively, inside the menu item name.
func (c *Context) FindByNameInMenu(menuName string) (models.InventoryItem, bool) {
	lower := strings.ToLower(menuName)
	for _, item := range c.items {
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// FindWine matches wine and champagne inventory against a menu name,
// ignoring whitespace so "Pinot Grigio (Glass)" finds "PinotGrigio" style
// entries from the stock sheet.
func (c *Context) FindWine(menuName string) (models.InventoryItem, bool) {
	menu := squash(menuName)
	for _, item := range c.items {
		cat := strings.ToLower(item.Category)
		if !strings.Contains(cat, "wine") && !strings.Contains(cat, "champagne") {
			continue
		}
		if strings.Contains(menu, squash(item.Name)) {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// FindSpirit matches spirit and liqueur inventory by exact name once the
// " (Shot)" suffix is stripped from the menu name.
func (c *Context) FindSpirit(menuName string) (models.InventoryItem, bool) {
	clean := strings.Replace(menuName, " (Shot)", "", 1)
	for _, item := range c.items {
		cat := strings.ToLower(item.Category)
		if !strings.Contains(cat, "spirit") && !strings.Contains(cat, "liqueur") {
			continue
		}
		if strings.EqualFold(item.Name, clean) {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// --- Matcher combinators ---

// Category matches an exact menu category.
func Category(name string) Matcher {
	return func(item models.MenuItem) bool { return item.Category == name }
}

// CategoryHas matches when the menu category contains any of the substrings.
func CategoryHas(subs ...string) Matcher {
	return func(item models.MenuItem) bool {
		for _, s := range subs {
			if strings.Contains(item.Category, s) {
				return true
			}
		}
		return false
	}
}

// NameHas matches when the menu name contains every substring.
func NameHas(subs ...string) Matcher {
	return func(item models.MenuItem) bool {
		for _, s := range subs {
			if !strings.Contains(item.Name, s) {
				return false
			}
		}
		return true
	}
}

// NameAny matches when the menu name contains at least one substring.
func NameAny(subs ...string) Matcher {
	return func(item models.MenuItem) bool {
		for _, s := range subs {
			if strings.Contains(item.Name, s) {
				return true
			}
		}
		return false
	}
}

// NameHasFold is NameHas with case-insensitive comparison.
func NameHasFold(sub string) Matcher {
	lower := strings.ToLower(sub)
	return func(item models.MenuItem) bool {
		return strings.Contains(strings.ToLower(item.Name), lower)
	}
}

// NameLacks is the exclusion guard: it matches only when the menu name
// contains none of the substrings. This is what keeps a bare "Espresso" rule
// from firing on "Double Espresso".
func NameLacks(subs ...string) Matcher {
	return func(item models.MenuItem) bool {
		for _, s := range subs {
			if strings.Contains(item.Name, s) {
				return false
			}
		}
		return true
	}
}

// Food matches FOOD menu items.
func Food() Matcher {
	return func(item models.MenuItem) bool { return item.ItemType == models.ItemTypeFood }
}

// All combines matchers conjunctively.
func All(ms ...Matcher) Matcher {
	return func(item models.MenuItem) bool {
		for _, m := range ms {
			if !m(item) {
				return false
			}
		}
		return true
	}
}

// Any combines matchers disjunctively.
func Any(ms ...Matcher) Matcher {
	return func(item models.MenuItem) bool {
		for _, m := range ms {
			if m(item) {
				return true
			}
		}
		return false
	}
}

// Evaluate runs a menu item through a rule table. The second return value is
// false when no rule matched; such items get no recipe at all, which is
// distinct from a fallback match with NeedsConfirmation set.
func Evaluate(item models.MenuItem, ctx *Context, table []Rule) (models.Recipe, bool) {
	for _, r := range table {
		if !r.When(item) {
			continue
		}
		var ingredients []models.RecipeIngredient
		confirm := r.Confirm
		if r.Resolve != nil {
			ingredients, confirm = r.Resolve(item, ctx)
		} else {
			ingredients = append(ingredients, r.Template...)
		}
		return models.Recipe{
			MenuSku:           item.Sku,
			MenuName:          item.Name,
			Ingredients:       ingredients,
			NeedsConfirmation: confirm,
		}, true
	}
	return models.Recipe{}, false
}

// ing is shorthand for building ingredient templates in rule tables.
func ing(sku, name string, qty int64, unit, note string) models.RecipeIngredient {
	return models.RecipeIngredient{InventorySku: sku, Name: name, Qty: qty, Unit: unit, Note: note}
}

func tmpl(items ...models.RecipeIngredient) []models.RecipeIngredient {
	return items
}
