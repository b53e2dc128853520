package osm

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/qedus/osmpbf"
)

// LoadPositions decodes an OSM PBF file and returns the coordinates of
// every node in it. Ways and relations only reference nodes, so the node
// coordinates alone determine the spatial extent of the file.
func LoadPositions(filePath string) ([]orb.Point, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := osmpbf.NewDecoder(f)

	// use more memory from the start, it is faster
	d.SetBufferSize(osmpbf.MaxBlobSize)

	// start decoding with several goroutines, it is faster
	if err := d.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return nil, fmt.Errorf("start pbf decode: %w", err)
	}

	var nc, wc, rc uint64
	positions := make([]orb.Point, 0, 1<<16)

	for {
		v, err := d.Decode()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode pbf: %w", err)
		}
		switch v := v.(type) {
		case *osmpbf.Node:
			positions = append(positions, orb.Point{v.Lon, v.Lat})
			nc++
		case *osmpbf.Way:
			wc++
		case *osmpbf.Relation:
			rc++
		default:
			return nil, fmt.Errorf("unknown pbf element type %T", v)
		}
	}

	log.Printf("Decoded %d nodes (skipped %d ways, %d relations)", nc, wc, rc)
	return positions, nil
}
