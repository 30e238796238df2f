// Package handlers wires HTTP routes to the application services.
package handlers

import (
	"log/slog"
	"net/http"

	"roster-service/internal/app/catalog"
	"roster-service/internal/app/roster"
	"roster-service/internal/app/session"
)

// Handler holds the application services behind the HTTP surface.
type Handler struct {
	session *session.Service
	roster  *roster.Service
	catalog *catalog.Service
	logger  *slog.Logger
	readyFn func() bool
}

// NewHandler constructs a Handler. readyFn may be nil, in which case
// the service reports ready as soon as it serves traffic.
func NewHandler(sessionSvc *session.Service, rosterSvc *roster.Service, catalogSvc *catalog.Service, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		session: sessionSvc,
		roster:  rosterSvc,
		catalog: catalogSvc,
		logger:  logger,
		readyFn: readyFn,
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn != nil && !h.readyFn() {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
