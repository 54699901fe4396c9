package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/logger"
	"github.com/Simplici0/kalkulator/internal/settings"
)

const maxBodyBytes = 10 << 20

type server struct {
	log      *slog.Logger
	catalog  *catalog.Store
	settings *settings.Store
	cascade  catalog.CascadePolicy
	match    catalog.MatchPolicy
}

func newServer(log *slog.Logger, cat *catalog.Store, set *settings.Store, cascade catalog.CascadePolicy, match catalog.MatchPolicy) *server {
	return &server{log: log, catalog: cat, settings: set, cascade: cascade, match: match}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"status":          "ok",
		"catalogVersion":  s.catalog.Snapshot().Version,
		"settingsVersion": s.settings.Snapshot().Version,
	})
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := render.DecodeJSON(r.Body, v); err != nil {
		respondError(w, r, http.StatusBadRequest, errorResponse{Error: "ungültiges JSON"})
		return false
	}
	return true
}

// fail maps domain errors to status codes. Anything unexpected is logged and
// reported as 500 without details.
func (s *server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *settings.ValidationError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondError(w, r, http.StatusNotFound, errorResponse{Error: "nicht gefunden"})
	case errors.As(err, &verr):
		respondError(w, r, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, catalog.ErrInvalid):
		respondError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.log.Error("request failed",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			logger.Err(err),
		)
		respondError(w, r, http.StatusInternalServerError, errorResponse{Error: "interner Fehler"})
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, body errorResponse) {
	render.Status(r, status)
	render.JSON(w, r, body)
}
