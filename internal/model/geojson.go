package model

import "encoding/json"

// FeatureCollection is the top-level envelope of a GeoJSON document.
// Features are kept opaque: geometries and properties are never inspected
// here and reach clients exactly as they appear in the source file.
type FeatureCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}
