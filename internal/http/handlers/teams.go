package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"roster-service/internal/app/roster"
	"roster-service/internal/domain/teams"
)

type teamRequest struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type assignRequest struct {
	PlayerID int `json:"playerId"`
}

type teamListResponse struct {
	Teams []teams.Team `json:"teams"`
}

// TeamsCollection serves /teams: list and create.
func (h *Handler) TeamsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, teamListResponse{Teams: h.roster.Teams()}, h.logger)
	case http.MethodPost:
		h.createTeam(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// TeamsItem serves /teams/{id} and /teams/{id}/players[/{playerId}].
func (h *Handler) TeamsItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	segments := strings.Split(strings.Trim(rest, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	teamID := segments[0]

	switch {
	case len(segments) == 1:
		h.teamByID(w, r, teamID)
	case segments[1] == "players" && len(segments) == 2:
		h.assignPlayer(w, r, teamID)
	case segments[1] == "players" && len(segments) == 3:
		h.unassignPlayer(w, r, teamID, segments[2])
	default:
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	team, err := h.roster.CreateTeam(req.Name, req.Region, req.Country)
	if err != nil {
		h.writeRosterError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, team, h.logger)
}

func (h *Handler) teamByID(w http.ResponseWriter, r *http.Request, teamID string) {
	switch r.Method {
	case http.MethodPut:
		var req teamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}
		if _, _, err := h.roster.UpdateTeam(teamID, req.Name, req.Region, req.Country); err != nil {
			h.writeRosterError(w, r, err)
			return
		}
		// An unknown id falls through to the unchanged list.
		writeJSON(w, http.StatusOK, teamListResponse{Teams: h.roster.Teams()}, h.logger)
	case http.MethodDelete:
		h.roster.DeleteTeam(teamID)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) assignPlayer(w http.ResponseWriter, r *http.Request, teamID string) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if _, _, err := h.roster.AssignPlayer(teamID, req.PlayerID); err != nil {
		h.writeRosterError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamListResponse{Teams: h.roster.Teams()}, h.logger)
}

func (h *Handler) unassignPlayer(w http.ResponseWriter, r *http.Request, teamID, playerRaw string) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	playerID, err := strconv.Atoi(playerRaw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	h.roster.UnassignPlayer(teamID, playerID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeRosterError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *roster.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, r, http.StatusBadRequest, vErr.Message, h.logger)
	case errors.Is(err, roster.ErrPlayerNotInCatalog):
		writeError(w, r, http.StatusNotFound, err.Error(), h.logger)
	case errors.Is(err, roster.ErrPlayerAssigned):
		writeError(w, r, http.StatusConflict, err.Error(), h.logger)
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
	}
}
