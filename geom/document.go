package geom

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Document is a parsed GeoJSON document root. Exactly one of the fields is
// set, depending on the root "type" member.
type Document struct {
	Geometry   orb.Geometry
	Feature    *geojson.Feature
	Collection *geojson.FeatureCollection
}

// DecodeDocument parses raw GeoJSON into a Document. The root may be a bare
// geometry, a Feature, or a FeatureCollection. Structural validation is
// delegated to orb/geojson; any parse failure is fatal.
func DecodeDocument(data []byte) (*Document, error) {
	var root struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	switch root.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature collection: %w", err)
		}
		return &Document{Collection: fc}, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature: %w", err)
		}
		return &Document{Feature: f}, nil
	case "Point", "MultiPoint", "LineString", "MultiLineString",
		"Polygon", "MultiPolygon", "GeometryCollection":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("parse geometry: %w", err)
		}
		return &Document{Geometry: g.Geometry()}, nil
	default:
		return nil, fmt.Errorf("unrecognized geojson type %q", root.Type)
	}
}

// Bbox reduces the document to its bounding box.
func (d *Document) Bbox() (Bbox, error) {
	switch {
	case d.Collection != nil:
		return FeatureCollectionBbox(d.Collection)
	case d.Feature != nil:
		return FeatureBbox(d.Feature)
	case d.Geometry != nil:
		return ComputeBbox(d.Geometry)
	default:
		return Bbox{}, ErrMissingGeometry
	}
}
