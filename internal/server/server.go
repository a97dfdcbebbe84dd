package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bkraemer/tde-import/internal/league"
	"github.com/bkraemer/tde-import/internal/logger"
	"github.com/bkraemer/tde-import/internal/match"
	"github.com/bkraemer/tde-import/internal/tde"
)

// Importer is the part of the extraction pipeline the server needs.
type Importer interface {
	Import(ctx context.Context, rawURL string) (*match.Record, error)
}

// Server serves the import API.
type Server struct {
	importer       Importer
	allowedOrigins []string
}

// New creates a Server around the given importer.
func New(importer Importer, allowedOrigins []string) *Server {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Server{importer: importer, allowedOrigins: allowedOrigins}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/api/teammatch", s.handleTeamMatch)
	r.Get("/healthz", s.handleHealth)
	return r
}

// handleTeamMatch runs one import request. The record is always freshly
// derived from the live pages, hence the no-store headers on every
// response.
func (s *Server) handleTeamMatch(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		logger.IncrCounter("imports.rejected")
		writeError(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	rec, err := s.importer.Import(r.Context(), rawURL)
	if err != nil {
		logger.IncrCounter("imports.failed")
		logger.Error("import failed", logger.Fields{"url": rawURL}, err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	logger.IncrCounter("imports.ok")
	logger.Info("teammatch imported", logger.Fields{
		"url":        rawURL,
		"league_key": rec.LeagueKey,
		"matches":    len(rec.Matches),
	})

	var doc interface{} = rec
	if r.URL.Query().Get("format") == "export" {
		doc = match.NewExport(rec)
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"imports": logger.CounterSnapshot(),
	})
}

// statusForError maps the pipeline's fatal conditions onto HTTP statuses:
// bad input is the caller's fault, an unlisted competition needs a key
// table update, and everything else points at the upstream site.
func statusForError(err error) int {
	switch {
	case errors.Is(err, tde.ErrUnsupportedURL):
		return http.StatusBadRequest
	case errors.Is(err, league.ErrUnknownLeague):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, doc interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		logger.Error("writing response", nil, err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
