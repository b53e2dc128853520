package geom

import (
	"testing"

	"github.com/matryer/is"
)

func TestDecodeDocumentGeometry(t *testing.T) {
	is := is.New(t)

	doc, err := DecodeDocument([]byte(`{"type":"Point","coordinates":[10,20]}`))
	is.NoErr(err)
	is.True(doc.Geometry != nil)

	b, err := doc.Bbox()
	is.NoErr(err)
	is.Equal(b, Bbox{Xmin: 10, Xmax: 10, Ymin: 20, Ymax: 20})
}

func TestDecodeDocumentFeature(t *testing.T) {
	is := is.New(t)

	doc, err := DecodeDocument([]byte(`{
		"type": "Feature",
		"properties": {"name": "somewhere"},
		"geometry": {"type": "LineString", "coordinates": [[0,0],[5,5]]}
	}`))
	is.NoErr(err)
	is.True(doc.Feature != nil)

	b, err := doc.Bbox()
	is.NoErr(err)
	is.Equal(b, Bbox{Xmin: 0, Xmax: 5, Ymin: 0, Ymax: 5})
}

func TestDecodeDocumentFeatureCollection(t *testing.T) {
	is := is.New(t)

	doc, err := DecodeDocument([]byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [-1,-2]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [3,4]}}
		]
	}`))
	is.NoErr(err)
	is.True(doc.Collection != nil)

	b, err := doc.Bbox()
	is.NoErr(err)
	is.Equal(b, Bbox{Xmin: -1, Xmax: 3, Ymin: -2, Ymax: 4})
}

func TestDecodeDocumentBadType(t *testing.T) {
	is := is.New(t)

	_, err := DecodeDocument([]byte(`{"type":"Sphere"}`))
	is.True(err != nil)
}

func TestDecodeDocumentBadJSON(t *testing.T) {
	is := is.New(t)

	_, err := DecodeDocument([]byte(`{"type":`))
	is.True(err != nil)
}
