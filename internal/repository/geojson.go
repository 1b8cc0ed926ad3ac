package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"urbandash/internal/model"
)

// BuildingRepository holds the GeoJSON building collection loaded once at
// startup. The document is immutable after load, so concurrent readers need
// no locking.
type BuildingRepository struct {
	raw        json.RawMessage
	collection model.FeatureCollection
}

// NewBuildingRepository reads and parses the GeoJSON file at path. The
// original bytes are retained so the collection is later served exactly as
// stored on disk, foreign top-level members included.
func NewBuildingRepository(path string) (*BuildingRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read building data: %w", err)
	}

	var collection model.FeatureCollection
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse building data: %w", err)
	}

	return &BuildingRepository{
		raw:        raw,
		collection: collection,
	}, nil
}

// GetAll returns the stored collection verbatim
func (r *BuildingRepository) GetAll() json.RawMessage {
	return r.raw
}

// FeatureCount returns the number of features in the collection
func (r *BuildingRepository) FeatureCount() int {
	return len(r.collection.Features)
}
