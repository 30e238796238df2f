package handlers

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
}

// Session serves the auth slice: current session, login, logout.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.session.Current(), h.logger)
	case http.MethodPost:
		h.login(w, r)
	case http.MethodDelete:
		h.session.Logout()
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	sess, err := h.session.Login(req.Username)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, sess, h.logger)
}
