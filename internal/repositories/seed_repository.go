package repositories

import (
	"errors"
	"fmt"
	"time"

	"seedgen/internal/models"

	"github.com/lib/pq"
)

// SeedRepository defines the interface for loading generated seed documents
// into the target Postgres database.
type SeedRepository interface {
	CreateBatch(executor SQLExecutor, batchID string, concept models.Concept) error
	InsertInventoryItem(executor SQLExecutor, batchID string, item models.InventoryItem) error
	InsertMenuItem(executor SQLExecutor, batchID string, item models.MenuItem) error
	InsertRecipe(executor SQLExecutor, batchID string, recipe models.Recipe) (int64, error)
	InsertRecipeIngredient(executor SQLExecutor, recipeID int64, ingredient models.RecipeIngredient) error
}

type seedRepository struct{}

// NewSeedRepository creates a new instance of SeedRepository.
func NewSeedRepository() SeedRepository {
	return &seedRepository{}
}

func (r *seedRepository) CreateBatch(executor SQLExecutor, batchID string, concept models.Concept) error {
	query := `INSERT INTO seed_batches (id, concept, created_at) VALUES ($1, $2, $3)`
	if _, err := executor.Exec(query, batchID, string(concept), time.Now()); err != nil {
		return wrapInsertError(err, fmt.Sprintf("seed batch %s", batchID))
	}
	return nil
}

func (r *seedRepository) InsertInventoryItem(executor SQLExecutor, batchID string, item models.InventoryItem) error {
	query := `INSERT INTO inventory_items (sku, batch_id, name, category, unit, unit_cost, reorder_level, reorder_qty, initial_stock)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := executor.Exec(query, item.Sku, batchID, item.Name, item.Category, item.Unit,
		item.UnitCost, item.ReorderLevel, item.ReorderQty, item.InitialStock)
	if err != nil {
		return wrapInsertError(err, fmt.Sprintf("inventory item %s", item.Sku))
	}
	return nil
}

func (r *seedRepository) InsertMenuItem(executor SQLExecutor, batchID string, item models.MenuItem) error {
	query := `INSERT INTO menu_items (sku, batch_id, name, description, category, item_type, station, price)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := executor.Exec(query, item.Sku, batchID, item.Name, item.Description, item.Category,
		item.ItemType, item.Station, item.Price)
	if err != nil {
		return wrapInsertError(err, fmt.Sprintf("menu item %s", item.Sku))
	}
	return nil
}

func (r *seedRepository) InsertRecipe(executor SQLExecutor, batchID string, recipe models.Recipe) (int64, error) {
	var id int64
	query := `INSERT INTO recipes (batch_id, menu_sku, menu_name, needs_confirmation)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := executor.QueryRow(query, batchID, recipe.MenuSku, recipe.MenuName, recipe.NeedsConfirmation).Scan(&id)
	if err != nil {
		return 0, wrapInsertError(err, fmt.Sprintf("recipe for %s", recipe.MenuSku))
	}
	return id, nil
}

func (r *seedRepository) InsertRecipeIngredient(executor SQLExecutor, recipeID int64, ingredient models.RecipeIngredient) error {
	query := `INSERT INTO recipe_ingredients (recipe_id, inventory_sku, name, qty, unit, note)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := executor.Exec(query, recipeID, ingredient.InventorySku, ingredient.Name,
		ingredient.Qty, ingredient.Unit, ingredient.Note)
	if err != nil {
		return wrapInsertError(err, fmt.Sprintf("ingredient %s of recipe %d", ingredient.InventorySku, recipeID))
	}
	return nil
}

func wrapInsertError(err error, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, what, pqErr.Constraint)
	}
	return fmt.Errorf("%w: inserting %s: %v", ErrDatabaseError, what, err)
}
