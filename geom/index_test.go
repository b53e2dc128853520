package geom

import (
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestBuildIndexAndSearch(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{0, 0}))
	fc.Append(geojson.NewFeature(orb.LineString{{10, 10}, {12, 12}}))
	fc.Append(geojson.NewFeature(orb.Point{100, 50}))

	ix, err := BuildIndex(fc)
	is.NoErr(err)
	is.Equal(ix.Size(), 3)

	hits := ix.Search(Bbox{Xmin: 9, Xmax: 13, Ymin: 9, Ymax: 13})
	is.Equal(hits, []int{1})

	hits = ix.Search(Bbox{Xmin: -200, Xmax: 200, Ymin: -90, Ymax: 90})
	is.Equal(len(hits), 3)

	hits = ix.Search(Bbox{Xmin: 30, Xmax: 40, Ymin: 30, Ymax: 40})
	is.Equal(len(hits), 0)
}

func TestBuildIndexFailsOnBrokenFeature(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{0, 0}))
	fc.Append(&geojson.Feature{Type: "Feature"}) // no geometry

	_, err := BuildIndex(fc)
	is.True(err != nil)
}
