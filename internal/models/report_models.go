package models

// RecipeIssue is a single reconciliation finding for one ingredient reference.
type RecipeIssue struct {
	MenuSku      string `json:"menuSku"`
	MenuName     string `json:"menuName"`
	InventorySku string `json:"inventorySku"`
	Problem      string `json:"problem"` // "malformed" or "missing"
}

// ReconciliationReport summarizes recipe -> inventory reference validation
// for one concept. Generation never blocks on findings; the report exists so
// an operator can review them before trusting the data in production.
type ReconciliationReport struct {
	Concept           Concept       `json:"concept"`
	TotalRecipes      int           `json:"totalRecipes"`
	FlaggedRecipes    int           `json:"flaggedRecipes"`
	DanglingRefs      []RecipeIssue `json:"danglingRefs"`
	MalformedRefs     []RecipeIssue `json:"malformedRefs"`
	CleanRecipeCount  int           `json:"cleanRecipeCount"`
	InventoryItemSeen int           `json:"inventoryItems"`
}

// ExpansionStats summarizes one menu expansion run.
type ExpansionStats struct {
	TotalItems int `json:"totalItems"`
	FoodItems  int `json:"foodItems"`
	DrinkItems int `json:"drinkItems"`
	NewDrinks  int `json:"newDrinks"`
	Beers      int `json:"beers"`
	Wines      int `json:"wines"`
	Spirits    int `json:"spirits"`
	Skipped    int `json:"skipped"` // inventory items without a usable cost
}

// GenerationResult is the end-of-run summary for one concept.
type GenerationResult struct {
	Concept        Concept              `json:"concept"`
	MenuItems      int                  `json:"menuItems"`
	InventoryItems int                  `json:"inventoryItems"`
	Recipes        int                  `json:"recipes"`
	Flagged        int                  `json:"needsConfirmation"`
	Expansion      *ExpansionStats      `json:"expansion,omitempty"`
	Report         ReconciliationReport `json:"reconciliation"`
}

// SeedSummary reports what one seeding transaction loaded.
type SeedSummary struct {
	Concept        Concept `json:"concept"`
	BatchID        string  `json:"batchId"`
	InventoryItems int     `json:"inventoryItems"`
	MenuItems      int     `json:"menuItems"`
	Recipes        int     `json:"recipes"`
	Ingredients    int     `json:"ingredients"`
}
