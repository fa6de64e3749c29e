// ABOUTME: HTTP server exposing stored records through the platform table API.
// ABOUTME: Wires chi routing, request logging and health checks over the store.

package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/2389/recgen/internal/logging"
	"github.com/2389/recgen/internal/store"
)

// Server serves the table API for one store.
type Server struct {
	store *store.Store
}

func New(s *store.Store) *Server {
	return &Server{store: s}
}

// Handler returns the full router, middleware included.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(logging.Middleware(s.store))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the API endpoints on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/now/table/{table}", func(r chi.Router) {
		r.Get("/", s.listRecords)
		r.Post("/", s.createRecord)
		r.Get("/{sys_id}", s.getRecord)
	})
	r.Get("/api/runs", s.listRuns)
	r.Get("/api/requests", s.listRequests)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeResult wraps payloads the way the platform does.
func writeResult(w http.ResponseWriter, status int, result any) {
	writeJSON(w, status, map[string]any{"result": result})
}
