package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/jwass/par-bbox/geom"
	"github.com/jwass/par-bbox/osm"
)

// Server holds the loaded document, its total bounding box, and the
// per-feature spatial index for handling requests
type Server struct {
	doc   *geom.Document
	bbox  geom.Bbox
	index *geom.Index
}

// RuntimeMetrics holds memory and goroutine statistics
type RuntimeMetrics struct {
	Goroutines   int     `json:"goroutines"`
	AllocMB      float64 `json:"alloc_mb"`       // currently allocated heap
	TotalAllocMB float64 `json:"total_alloc_mb"` // cumulative allocated (includes freed)
	SysMB        float64 `json:"sys_mb"`         // total memory from OS
	HeapObjects  uint64  `json:"heap_objects"`
	NumGC        uint32  `json:"num_gc"`
}

// getRuntimeMetrics collects current runtime statistics
func getRuntimeMetrics() RuntimeMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return RuntimeMetrics{
		Goroutines:   runtime.NumGoroutine(),
		AllocMB:      float64(m.Alloc) / 1024 / 1024,
		TotalAllocMB: float64(m.TotalAlloc) / 1024 / 1024,
		SysMB:        float64(m.Sys) / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
		NumGC:        m.NumGC,
	}
}

// bboxJSON is the wire form of a bounding box
type bboxJSON struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
}

func toJSON(b geom.Bbox) bboxJSON {
	return bboxJSON{Xmin: b.Xmin, Xmax: b.Xmax, Ymin: b.Ymin, Ymax: b.Ymax}
}

// handleBbox returns the total bounding box of the loaded document
func (s *Server) handleBbox(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toJSON(s.bbox)); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// handleQuery returns the indices of features whose boxes intersect the
// query box given as xmin/ymin/xmax/ymax parameters
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		http.Error(w, "Loaded document is not a feature collection", http.StatusNotFound)
		return
	}

	var q geom.Bbox
	var err error
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"xmin", &q.Xmin},
		{"ymin", &q.Ymin},
		{"xmax", &q.Xmax},
		{"ymax", &q.Ymax},
	} {
		*p.dst, err = strconv.ParseFloat(r.URL.Query().Get(p.name), 64)
		if err != nil {
			http.Error(w, "Invalid or missing parameter: "+p.name, http.StatusBadRequest)
			return
		}
	}

	features := s.index.Search(q)
	response := map[string]interface{}{
		"count":    len(features),
		"features": features,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// handleCompute parses a GeoJSON request body and returns its bounding box
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	doc, err := geom.DecodeDocument(body)
	if err != nil {
		http.Error(w, "Invalid GeoJSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	b, err := doc.Bbox()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toJSON(b)); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// loadDocument reads and parses the file at path, timing the parse and
// reduce phases separately. PBF input reduces raw node positions; anything
// else is parsed as GeoJSON.
func loadDocument(path string) (*geom.Document, geom.Bbox, float64, float64, error) {
	if strings.HasSuffix(path, ".pbf") {
		start := time.Now()
		positions, err := osm.LoadPositions(path)
		parsed := time.Now()
		if err != nil {
			return nil, geom.Bbox{}, 0, 0, err
		}
		b, err := geom.Reduce(positions, func(p orb.Point) (geom.Bbox, error) {
			return geom.FromPoint(p), nil
		})
		if err != nil {
			return nil, geom.Bbox{}, 0, 0, err
		}
		return nil, b, parsed.Sub(start).Seconds(), time.Since(parsed).Seconds(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, geom.Bbox{}, 0, 0, err
	}

	start := time.Now()
	doc, err := geom.DecodeDocument(data)
	parsed := time.Now()
	if err != nil {
		return nil, geom.Bbox{}, 0, 0, err
	}

	b, err := doc.Bbox()
	if err != nil {
		return nil, geom.Bbox{}, 0, 0, err
	}
	return doc, b, parsed.Sub(start).Seconds(), time.Since(parsed).Seconds(), nil
}

func serve(addr string, doc *geom.Document, bbox geom.Bbox) {
	server := &Server{doc: doc, bbox: bbox}

	if doc != nil && doc.Collection != nil {
		index, err := geom.BuildIndex(doc.Collection)
		if err != nil {
			log.Fatalf("Failed to build index: %v", err)
		}
		server.index = index
		log.Printf("Indexed %d features", index.Size())
	}

	http.HandleFunc("/bbox", server.handleBbox)
	http.HandleFunc("/query", server.handleQuery)
	http.HandleFunc("/compute", server.handleCompute)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	http.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics := getRuntimeMetrics()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metrics)
	})

	log.Printf("Listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func main() {
	listen := flag.String("listen", "", "serve the loaded document over HTTP on this address instead of printing its bbox")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: parbbox [flags] /path/to/file.geojson")
		os.Exit(1)
	}
	path := flag.Arg(0)

	doc, bbox, parseSecs, bboxSecs, err := loadDocument(path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			fmt.Printf("Could not open '%s': %v\n", path, err)
		} else {
			fmt.Printf("Could not process '%s': %v\n", path, err)
		}
		os.Exit(1)
	}

	if *listen != "" {
		serve(*listen, doc, bbox)
		return
	}

	fmt.Printf("Total bbox: %s\n", bbox)
	fmt.Printf("Time to parse: %f\n", parseSecs)
	fmt.Printf("Time to bbox: %f\n", bboxSecs)
}
