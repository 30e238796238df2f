// Package http assembles the route table for the service.
package http

import (
	nethttp "net/http"

	"roster-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/session", handler.Session)
	mux.HandleFunc("/teams", handler.TeamsCollection)
	mux.HandleFunc("/teams/", handler.TeamsItem)
	mux.HandleFunc("/players", handler.PlayersSnapshot)
	mux.HandleFunc("/players/next", handler.PlayersNext)
	mux.HandleFunc("/players/retry", handler.PlayersRetry)
	mux.HandleFunc("/players/reset", handler.PlayersReset)
	return mux
}
