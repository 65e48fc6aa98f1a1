package services

import (
	"database/sql"
	"fmt"

	"seedgen/internal/models"
	"seedgen/internal/repositories"
	"seedgen/pkg/utils"

	"github.com/google/uuid"
)

// SeedService loads a concept's generated documents into the target database.
// Each run is one transaction under a fresh batch ID; a failed load rolls the
// whole concept back rather than leaving half a catalog behind.
type SeedService interface {
	SeedConcept(concept models.Concept) (*models.SeedSummary, error)
}

type seedService struct {
	catalogRepo repositories.CatalogRepository
	seedRepo    repositories.SeedRepository
	db          *sql.DB
}

// NewSeedService creates a new instance of SeedService.
func NewSeedService(catalogRepo repositories.CatalogRepository, seedRepo repositories.SeedRepository, db *sql.DB) SeedService {
	return &seedService{
		catalogRepo: catalogRepo,
		seedRepo:    seedRepo,
		db:          db,
	}
}

func (s *seedService) SeedConcept(concept models.Concept) (*models.SeedSummary, error) {
	inventory, err := s.catalogRepo.LoadInventory(concept)
	if err != nil {
		return nil, err
	}
	menu, err := s.catalogRepo.LoadMenu(concept)
	if err != nil {
		return nil, err
	}
	recipes, err := s.catalogRepo.LoadRecipes(concept)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	batchID := uuid.NewString()
	if err := s.seedRepo.CreateBatch(tx, batchID, concept); err != nil {
		return nil, err
	}

	for _, item := range inventory.Items {
		if err := s.seedRepo.InsertInventoryItem(tx, batchID, item); err != nil {
			return nil, err
		}
	}
	for _, item := range menu.Items {
		if err := s.seedRepo.InsertMenuItem(tx, batchID, item); err != nil {
			return nil, err
		}
	}

	ingredients := 0
	for _, recipe := range recipes {
		recipeID, err := s.seedRepo.InsertRecipe(tx, batchID, recipe)
		if err != nil {
			return nil, err
		}
		for _, ingredient := range recipe.Ingredients {
			if err := s.seedRepo.InsertRecipeIngredient(tx, recipeID, ingredient); err != nil {
				return nil, err
			}
			ingredients++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing seed transaction: %w", err)
	}

	summary := &models.SeedSummary{
		Concept:        concept,
		BatchID:        batchID,
		InventoryItems: len(inventory.Items),
		MenuItems:      len(menu.Items),
		Recipes:        len(recipes),
		Ingredients:    ingredients,
	}
	utils.LogInfo("Concept seeded", map[string]interface{}{
		"concept":     string(concept),
		"batchId":     batchID,
		"inventory":   summary.InventoryItems,
		"menu":        summary.MenuItems,
		"recipes":     summary.Recipes,
		"ingredients": summary.Ingredients,
	})
	return summary, nil
}
