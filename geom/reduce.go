package geom

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyGeometry means a sequence that must be reduced has no
	// elements. There is no identity Bbox, so an empty extent has no
	// valid bounding box.
	ErrEmptyGeometry = errors.New("empty geometry: no positions to bound")

	// ErrMissingGeometry means a feature carries no geometry.
	ErrMissingGeometry = errors.New("feature has no geometry")
)

// Slices shorter than this are reduced sequentially; forking a goroutine
// per split is pure overhead on short coordinate runs.
const parallelCutoff = 1024

// Reduce computes the bounding box of a non-empty slice by recursively
// splitting it at the midpoint, reducing each half, and merging the two
// results. fn computes the box of a single element, so the same routine
// serves every nesting level (positions, rings, polygons, geometries,
// features) with a different fn.
//
// Because Merge is associative and commutative and the input is read-only,
// the result does not depend on the split point or on whether the halves
// run concurrently. Halves of large slices are evaluated in parallel.
func Reduce[T any](elems []T, fn func(T) (Bbox, error)) (Bbox, error) {
	switch len(elems) {
	case 0:
		return Bbox{}, ErrEmptyGeometry
	case 1:
		return fn(elems[0])
	}

	mid := len(elems) / 2
	left, right := elems[:mid], elems[mid:]

	if len(elems) < parallelCutoff {
		lb, err := Reduce(left, fn)
		if err != nil {
			return Bbox{}, err
		}
		rb, err := Reduce(right, fn)
		if err != nil {
			return Bbox{}, err
		}
		return lb.Merge(rb), nil
	}

	var rb Bbox
	var g errgroup.Group
	g.Go(func() error {
		var err error
		rb, err = Reduce(right, fn)
		return err
	})
	lb, lerr := Reduce(left, fn)
	if err := g.Wait(); err != nil {
		return Bbox{}, err
	}
	if lerr != nil {
		return Bbox{}, lerr
	}
	return lb.Merge(rb), nil
}
