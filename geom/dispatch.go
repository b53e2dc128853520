package geom

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ComputeBbox returns the bounding box of any orb geometry. Each kind
// decomposes to the next level down and is handed to Reduce, until single
// coordinate pairs are lifted directly.
//
// A polygon's box is based on its exterior ring only; interior rings
// (holes) never contribute, even a malformed hole extending outside the
// shell.
func ComputeBbox(g orb.Geometry) (Bbox, error) {
	switch g := g.(type) {
	case orb.Point:
		return FromPoint(g), nil
	case orb.MultiPoint:
		return Reduce(g, pointBbox)
	case orb.LineString:
		return Reduce(g, pointBbox)
	case orb.MultiLineString:
		return Reduce(g, lineStringBbox)
	case orb.Polygon:
		return polygonBbox(g)
	case orb.MultiPolygon:
		return Reduce(g, polygonBbox)
	case orb.Collection:
		return Reduce(g, ComputeBbox)
	default:
		return Bbox{}, fmt.Errorf("unsupported geometry type %q", g.GeoJSONType())
	}
}

func pointBbox(p orb.Point) (Bbox, error) {
	return FromPoint(p), nil
}

func lineStringBbox(ls orb.LineString) (Bbox, error) {
	return Reduce(ls, pointBbox)
}

// polygonBbox reduces only ring 0, the exterior.
func polygonBbox(p orb.Polygon) (Bbox, error) {
	if len(p) == 0 {
		return Bbox{}, fmt.Errorf("polygon has no rings: %w", ErrEmptyGeometry)
	}
	return Reduce([]orb.Point(p[0]), pointBbox)
}

// FeatureBbox returns the bounding box of a feature's geometry. Geometry
// is technically optional in GeoJSON but required here; a feature without
// one is an error, not an empty box.
func FeatureBbox(f *geojson.Feature) (Bbox, error) {
	if f.Geometry == nil {
		return Bbox{}, ErrMissingGeometry
	}
	return ComputeBbox(f.Geometry)
}

// FeatureCollectionBbox reduces a collection to the merged box of its
// features.
func FeatureCollectionBbox(fc *geojson.FeatureCollection) (Bbox, error) {
	return Reduce(fc.Features, FeatureBbox)
}
