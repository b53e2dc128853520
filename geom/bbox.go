package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Bbox is an axis-aligned bounding rectangle in the coordinate plane,
// conventionally (longitude, latitude). Values are never mutated after
// construction; Merge always returns a fresh Bbox.
//
// The min/max merge ignores antimeridian crossings: a geometry that wraps
// past the ±180° meridian yields an overly wide box.
type Bbox struct {
	Xmin float64
	Xmax float64
	Ymin float64
	Ymax float64
}

// FromPoint lifts a single coordinate pair into a degenerate Bbox where
// Xmin=Xmax and Ymin=Ymax.
func FromPoint(p orb.Point) Bbox {
	return Bbox{Xmin: p[0], Xmax: p[0], Ymin: p[1], Ymax: p[1]}
}

// Merge returns the smallest Bbox containing both b and other. It is
// associative, commutative and idempotent, which is what makes the
// divide-and-conquer reduction order-independent.
func (b Bbox) Merge(other Bbox) Bbox {
	return Bbox{
		Xmin: math.Min(b.Xmin, other.Xmin),
		Xmax: math.Max(b.Xmax, other.Xmax),
		Ymin: math.Min(b.Ymin, other.Ymin),
		Ymax: math.Max(b.Ymax, other.Ymax),
	}
}

// Intersects reports whether b and other overlap or touch.
func (b Bbox) Intersects(other Bbox) bool {
	return b.Xmin <= other.Xmax && other.Xmin <= b.Xmax &&
		b.Ymin <= other.Ymax && other.Ymin <= b.Ymax
}

func (b Bbox) String() string {
	return fmt.Sprintf("Bbox{xmin: %v, xmax: %v, ymin: %v, ymax: %v}",
		b.Xmin, b.Xmax, b.Ymin, b.Ymax)
}
