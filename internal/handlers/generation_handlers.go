package handlers

import (
	"errors"
	"net/http"

	"seedgen/internal/repositories"
	"seedgen/internal/services"
	"seedgen/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GenerationHandler triggers pipeline runs from the review API.
type GenerationHandler struct {
	generation services.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generation services.GenerationService) *GenerationHandler {
	return &GenerationHandler{generation: generation}
}

// Generate runs the full pipeline for one concept and returns the run summary.
func (h *GenerationHandler) Generate(c *gin.Context) {
	concept, ok := conceptParam(c)
	if !ok {
		return
	}

	result, err := h.generation.Generate(concept)
	if err != nil {
		if errors.Is(err, repositories.ErrMissingInput) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Curated menu file missing", err.Error()))
			return
		}
		utils.LogError(err, "Generation run failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Generation failed", ""))
		return
	}

	c.JSON(http.StatusOK, result)
}
