package handlers

import (
	"log/slog"
	"net/http"

	"roster-service/internal/logging"
	"roster-service/internal/pager"
)

type pageTriggerResponse struct {
	Outcome pager.Outcome `json:"outcome"`
	State   pager.State   `json:"state"`
	Error   string        `json:"error,omitempty"`
	Hint    string        `json:"hint,omitempty"`
}

// PlayersSnapshot serves GET /players: the cached catalog plus
// pagination state.
func (h *Handler) PlayersSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Snapshot(), h.logger)
}

// PlayersNext serves POST /players/next: triggers the next page fetch.
// The trigger always answers 202; failures surface in the body and in
// subsequent snapshots, matching the demand-driven pagination model.
func (h *Handler) PlayersNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	outcome, err := h.catalog.LoadNext(r.Context())
	h.writePageTrigger(w, r, outcome, err)
}

// PlayersRetry serves POST /players/retry: re-attempts a failed fetch.
func (h *Handler) PlayersRetry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	outcome, err := h.catalog.Retry(r.Context())
	h.writePageTrigger(w, r, outcome, err)
}

// PlayersReset serves POST /players/reset: clears the catalog and the
// pagination machine.
func (h *Handler) PlayersReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	h.catalog.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writePageTrigger(w http.ResponseWriter, r *http.Request, outcome pager.Outcome, err error) {
	view := h.catalog.Snapshot()
	resp := pageTriggerResponse{
		Outcome: outcome,
		State:   view.State,
		Hint:    view.Hint,
	}
	if err != nil {
		resp.Error = err.Error()
		logger := loggerFromContext(r, h.logger)
		logging.Warn(logger, "catalog page trigger failed", slog.String("outcome", string(outcome)))
	}
	writeJSON(w, http.StatusAccepted, resp, h.logger)
}
