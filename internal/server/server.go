// Package server exposes the room catalog and the evaluation engine as a
// stateless JSON API for the browser configurator. Layout state lives in
// the browser; every request carries the full scenario.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Miegu/Space-Architects/internal/observability"
	"github.com/Miegu/Space-Architects/pkg/advisor"
	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/compliance"
	"github.com/Miegu/Space-Architects/pkg/geo"
	"github.com/Miegu/Space-Architects/pkg/placement"
	"github.com/Miegu/Space-Architects/pkg/scenario"
	"github.com/Miegu/Space-Architects/pkg/validation"
)

// Server serves the configurator API over a room catalog.
type Server struct {
	cfg     Config
	catalog *catalog.Catalog
	metrics *observability.Collector
	log     *slog.Logger
}

// New creates a server over the given catalog. A nil metrics collector
// disables instrumentation.
func New(cfg Config, cat *catalog.Catalog, metrics *observability.Collector) *Server {
	return &Server{
		cfg:     cfg,
		catalog: cat,
		metrics: metrics,
		log:     slog.With("component", "server"),
	}
}

// Handler builds the routed and middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/rooms", s.handleRooms)
	mux.HandleFunc("GET /api/rooms/{id}", s.handleRoom)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/score", s.handleScore)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	var h http.Handler = mux
	h = s.metrics.Instrument(h)
	h = requestLogger(h)
	h = newRateLimiter(s.cfg.RateLimit).middleware(h)
	h = newCORS(s.cfg).Handler(h)
	return h
}

// Start launches the HTTP server with the configured timeouts.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Port
	s.log.Info("Server starting",
		"addr", addr,
		"frontend_url", s.cfg.FrontendURL,
		"rate_limit_enabled", s.cfg.RateLimit.Enabled,
	)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	var filter catalog.Category
	if q := r.URL.Query().Get("category"); q != "" {
		filter = catalog.Category(q)
		if filter != catalog.CategoryEssential && filter != catalog.CategoryOptional {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", q))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"room_types": s.catalog.List(filter),
	})
}

func (s *Server) handleRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rt, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown room type %q", id))
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

// validateRequest is a candidate placement against an in-progress layout.
type validateRequest struct {
	Module   scenario.Size   `json:"module"`
	Rooms    []scenario.Room `json:"rooms"`
	TypeID   string          `json:"type_id"`
	Position geo.Point       `json:"position"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	l := &scenario.Layout{Module: req.Module, Rooms: req.Rooms}
	res, err := placement.Validate(s.catalog, req.TypeID, req.Position, l)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.RecordEvaluation("validate")
	writeJSON(w, http.StatusOK, res)
}

// scoreResponse bundles the schema report, the compliance report, and the
// advice derived from it.
type scoreResponse struct {
	Schema          *validation.Report       `json:"schema"`
	Compliance      *compliance.Report       `json:"compliance"`
	Recommendations []advisor.Recommendation `json:"recommendations"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var sc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	schema := validation.ValidateSchema(s.catalog, &sc)
	if !schema.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, scoreResponse{Schema: schema})
		return
	}

	rep := compliance.Score(s.catalog, sc.Layout(), sc.Mission)
	s.metrics.RecordEvaluation("score")
	writeJSON(w, http.StatusOK, scoreResponse{
		Schema:          schema,
		Compliance:      rep,
		Recommendations: advisor.Recommend(rep),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": message,
		"code":  status,
	})
}
