package handler

import (
	"net/http"

	"urbandash/internal/repository"

	"github.com/gin-gonic/gin"
)

// BuildingHandler handles building dataset HTTP requests
type BuildingHandler struct {
	repo *repository.BuildingRepository
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(repo *repository.BuildingRepository) *BuildingHandler {
	return &BuildingHandler{
		repo: repo,
	}
}

// GetBuildings handles GET /api/buildings
func (h *BuildingHandler) GetBuildings(c *gin.Context) {
	// Serve the document exactly as it was loaded from disk.
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.repo.GetAll())
}
