package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"seedgen/internal/models"
)

// CatalogRepository defines the interface for reading and writing the
// per-concept seed documents on disk.
type CatalogRepository interface {
	LoadMenu(concept models.Concept) (*models.MenuDocument, error)
	SaveMenu(concept models.Concept, doc *models.MenuDocument) error
	LoadInventory(concept models.Concept) (*models.InventoryDocument, error)
	SaveInventory(concept models.Concept, doc *models.InventoryDocument) error
	LoadRecipes(concept models.Concept) ([]models.Recipe, error)
	SaveRecipes(concept models.Concept, recipes []models.Recipe) error
	LoadReport(concept models.Concept) (*models.ReconciliationReport, error)
	SaveReport(concept models.Concept, report *models.ReconciliationReport) error
}

type catalogRepository struct {
	dir string
}

// NewCatalogRepository creates a CatalogRepository rooted at the given
// data directory.
func NewCatalogRepository(dir string) CatalogRepository {
	return &catalogRepository{dir: dir}
}

// File name helpers so the CLI and the review API agree on paths.

func MenuFile(concept models.Concept) string {
	return fmt.Sprintf("%s-menu.json", concept)
}

func InventoryFile(concept models.Concept) string {
	return fmt.Sprintf("%s-inventory.json", concept)
}

func RecipesFile(concept models.Concept) string {
	return fmt.Sprintf("%s-recipes.json", concept)
}

func ReportFile(concept models.Concept) string {
	return fmt.Sprintf("%s-reconciliation.json", concept)
}

func (r *catalogRepository) LoadMenu(concept models.Concept) (*models.MenuDocument, error) {
	doc := &models.MenuDocument{}
	if err := r.read(MenuFile(concept), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *catalogRepository) SaveMenu(concept models.Concept, doc *models.MenuDocument) error {
	return r.write(MenuFile(concept), doc)
}

func (r *catalogRepository) LoadInventory(concept models.Concept) (*models.InventoryDocument, error) {
	doc := &models.InventoryDocument{}
	if err := r.read(InventoryFile(concept), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *catalogRepository) SaveInventory(concept models.Concept, doc *models.InventoryDocument) error {
	return r.write(InventoryFile(concept), doc)
}

func (r *catalogRepository) LoadRecipes(concept models.Concept) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.read(RecipesFile(concept), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *catalogRepository) SaveRecipes(concept models.Concept, recipes []models.Recipe) error {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return r.write(RecipesFile(concept), recipes)
}

func (r *catalogRepository) LoadReport(concept models.Concept) (*models.ReconciliationReport, error) {
	report := &models.ReconciliationReport{}
	if err := r.read(ReportFile(concept), report); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *catalogRepository) SaveReport(concept models.Concept, report *models.ReconciliationReport) error {
	return r.write(ReportFile(concept), report)
}

func (r *catalogRepository) read(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingInput, name)
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// write marshals with two-space indentation and replaces the target file
// atomically so a crashed run never leaves a half-written document behind.
func (r *catalogRepository) write(name string, v interface{}) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	data = append(data, '\n')

	target := filepath.Join(r.dir, name)
	tmp, err := os.CreateTemp(r.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
