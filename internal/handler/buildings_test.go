package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"urbandash/internal/repository"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newBuildingRepo(t *testing.T, doc string) *repository.BuildingRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildings.geojson")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	repo, err := repository.NewBuildingRepository(path)
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	return repo
}

func TestBuildingHandler_GetBuildings(t *testing.T) {
	doc := `{"type": "FeatureCollection", "name": "fixture", "features": [{"type": "Feature", "properties": {"height": 10}, "geometry": null}]}`
	router := gin.New()
	router.GET("/api/buildings", NewBuildingHandler(newBuildingRepo(t, doc)).GetBuildings)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/buildings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != doc {
		t.Errorf("Expected the stored document verbatim, got: %s", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
}
