package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// PlanRequest is a planning request in planar meters. The boundary polygon
// and prior point are optional; when both are present the response includes
// a boundary-safe route from the prior point to the first path waypoint.
type PlanRequest struct {
	SearchArea Polygon        `json:"searchArea"`
	Boundary   *Polygon       `json:"boundary,omitempty"`
	PriorPoint *Point         `json:"priorPoint,omitempty"`
	Mode       string         `json:"mode,omitempty"` // "decomp" (default) or "naive"
	Config     *PlannerConfig `json:"config,omitempty"`
}

// PlanResponse carries the computed search path.
type PlanResponse struct {
	PlanID         string  `json:"planId"`
	Success        bool    `json:"success"`
	Message        string  `json:"message,omitempty"`
	Route          []Point `json:"route,omitempty"`
	Path           []Point `json:"path"`
	DistanceMeters float64 `json:"distanceMeters,omitempty"`
}

// The visiting-order search is factorial in subregion count, so the planning
// endpoint is rate limited rather than queued.
var planLimiter = rate.NewLimiter(rate.Limit(2), 4)

// corsMiddleware adds CORS headers to allow frontend requests.
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// POST /searchPath - compute a coverage path for a search polygon
func searchPathHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🗺️  Search path request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !planLimiter.Allow() {
		log.Println("❌ Rate limit exceeded")
		http.Error(w, "Too many planning requests", http.StatusTooManyRequests)
		log.Println("========================================")
		return
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Mode != "" && req.Mode != "decomp" && req.Mode != "naive" {
		log.Printf("❌ Invalid mode: %q\n", req.Mode)
		http.Error(w, "Invalid mode: use naive or decomp", http.StatusBadRequest)
		return
	}

	cfg := DefaultConfig()
	if req.Config != nil {
		// Unset fields in a partial config fall back to the defaults; a
		// zero offset in particular would stall the sweep forever.
		cfg = *req.Config
		if cfg.Radius == 0 {
			cfg.Radius = DefaultRadius
		}
		if cfg.Offset == 0 {
			cfg.Offset = cfg.Radius
		}
		if cfg.Correction == 0 {
			cfg.Correction = cfg.Radius
		}
		if cfg.Altitude == 0 {
			cfg.Altitude = DefaultAltitude
		}
		if cfg.MaxSubregions == 0 {
			cfg.MaxSubregions = DefaultMaxSubregions
		}
		if cfg.RouterIterationCap == 0 {
			cfg.RouterIterationCap = DefaultRouterIterationCap
		}
	}

	planID := uuid.New().String()
	log.Printf("   Plan ID: %s\n", planID)
	log.Printf("   Mode: %s, search vertices: %d\n", req.Mode, req.SearchArea.Size())

	if Clockwise(req.SearchArea.Vertices) {
		ReversePoints(req.SearchArea.Vertices)
	}

	var path []Point
	var err error
	if req.Mode == "naive" {
		path, err = NaivePath(req.SearchArea, cfg)
	} else {
		path, err = SearchPath(req.SearchArea, cfg)
	}
	if err != nil {
		log.Printf("❌ Planning failed: %v\n", err)
		status := http.StatusInternalServerError
		if errors.Is(err, ErrDegeneratePolygon) || errors.Is(err, ErrInvalidOffset) ||
			errors.Is(err, ErrTooManySubregions) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		writeJSON(w, PlanResponse{PlanID: planID, Success: false, Message: err.Error()})
		log.Println("========================================")
		return
	}

	var route []Point
	if req.Boundary != nil && req.PriorPoint != nil && len(path) > 0 {
		boundary := *req.Boundary
		if Clockwise(boundary.Vertices) {
			ReversePoints(boundary.Vertices)
		}
		route, err = PathTo(*req.PriorPoint, path[0], boundary, cfg)
		if err != nil {
			log.Printf("❌ Routing failed: %v\n", err)
			w.WriteHeader(http.StatusInternalServerError)
			writeJSON(w, PlanResponse{PlanID: planID, Success: false, Message: err.Error()})
			log.Println("========================================")
			return
		}
	}

	var distance float64
	for i := 0; i+1 < len(path); i++ {
		distance += path[i].Distance(path[i+1])
	}

	log.Printf("✅ Path computed: %d waypoints, %d route waypoints\n", len(path), len(route))
	log.Printf("   Distance: %.2f meters (%.2f km)\n", distance, distance/1000)
	log.Println("========================================")

	writeJSON(w, PlanResponse{
		PlanID:         planID,
		Success:        true,
		Route:          route,
		Path:           path,
		DistanceMeters: distance,
	})
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status": "ready",
		"radius": DefaultRadius,
	})
}

// RunServer starts the HTTP planning service.
func RunServer(addr string) error {
	http.HandleFunc("/searchPath", corsMiddleware(searchPathHandler))
	http.HandleFunc("/health", corsMiddleware(healthHandler))

	log.Println("========================================")
	log.Println("🚀 Search Path Planner Server")
	log.Println("========================================")
	log.Println("Endpoints:")
	log.Println("  POST /searchPath  - Compute coverage path for a search polygon")
	log.Println("  GET  /health      - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Printf("Server starting on %s\n", addr)
	log.Println("========================================")

	return http.ListenAndServe(addr, nil)
}
