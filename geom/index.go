package geom

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/rtree"
)

// Index is a spatial index over the per-feature bounding boxes of a
// feature collection. Entries are feature positions within the
// collection.
type Index struct {
	tree *rtree.RTreeG[int]
}

// BuildIndex computes each feature's bounding box and inserts it into a
// fresh index. Any feature that cannot be reduced fails the whole build.
func BuildIndex(fc *geojson.FeatureCollection) (*Index, error) {
	ix := &Index{tree: &rtree.RTreeG[int]{}}
	for i, f := range fc.Features {
		b, err := FeatureBbox(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		ix.tree.Insert(
			[2]float64{b.Xmin, b.Ymin},
			[2]float64{b.Xmax, b.Ymax},
			i,
		)
	}
	return ix, nil
}

// Search returns the positions of all features whose bounding boxes
// intersect the query box.
func (ix *Index) Search(b Bbox) []int {
	result := make([]int, 0)
	ix.tree.Search(
		[2]float64{b.Xmin, b.Ymin},
		[2]float64{b.Xmax, b.Ymax},
		func(min, max [2]float64, i int) bool {
			result = append(result, i)
			return true // continue searching
		},
	)
	return result
}

// Size returns the number of indexed features.
func (ix *Index) Size() int {
	return ix.tree.Len()
}
