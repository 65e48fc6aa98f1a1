package handlers

import (
	"errors"
	"net/http"

	"seedgen/internal/models"
	"seedgen/internal/repositories"
	"seedgen/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the generated documents for review: menu, inventory,
// recipes, flagged recipes, and the reconciliation report.
type CatalogHandler struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogRepo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo}
}

func conceptParam(c *gin.Context) (models.Concept, bool) {
	concept, err := models.ParseConcept(c.Param("concept"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Unknown concept", err.Error()))
		return "", false
	}
	return concept, true
}

func respondDocument(c *gin.Context, doc interface{}, err error) {
	if err != nil {
		if errors.Is(err, repositories.ErrMissingInput) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Document not generated yet", err.Error()))
			return
		}
		utils.LogError(err, "Failed to load catalog document")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load document", ""))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetMenu returns the concept's menu document.
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	concept, ok := conceptParam(c)
	if !ok {
		return
	}
	doc, err := h.catalogRepo.LoadMenu(concept)
	respondDocument(c, doc, err)
}

// GetInventory returns the concept's inventory catalog.
func (h *CatalogHandler) GetInventory(c *gin.Context) {
	concept, ok := conceptParam(c)
	if !ok {
		return
	}
	doc, err := h.catalogRepo.LoadInventory(concept)
	respondDocument(c, doc, err)
}

// GetRecipes returns all generated recipes for the concept.
func (h *CatalogHandler) GetRecipes(c *gin.Context) {
	concept, ok := conceptParam(c)
	if !ok {
		return
	}
	recipes, err := h.catalogRepo.LoadRecipes(concept)
	respondDocument(c, recipes, err)
}

// GetFlaggedRecipes returns only the recipes that need operator confirmation.
func (h *CatalogHandler) GetFlaggedRecipes(c *gin.Context) {
	concept, ok := conceptParam(c)
	if !ok {
		return
	}
	recipes, err := h.catalogRepo.LoadRecipes(concept)
	if err != nil {
		respondDocument(c, nil, err)
		return
	}
	flagged := []models.Recipe{}
	for _, recipe := range recipes {
		if recipe.NeedsConfirmation {
			flagged = append(flagged, recipe)
		}
	}
	c.JSON(http.StatusOK, flagged)
}

// GetReconciliation returns the concept's reconciliation report.
func (h *CatalogHandler) GetReconciliation(c *gin.Context) {
	concept, ok := conceptParam(c)
	if !ok {
		return
	}
	report, err := h.catalogRepo.LoadReport(concept)
	respondDocument(c, report, err)
}
