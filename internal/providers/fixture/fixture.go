// Package fixture serves a deterministic player catalog for local runs
// and tests when no balldontlie API key is configured.
package fixture

import (
	"context"

	"roster-service/internal/domain/franchises"
	"roster-service/internal/domain/players"
	"roster-service/internal/providers"
)

// Provider pages through a static set of players using the same cursor
// contract as the real catalog.
type Provider struct {
	roster []players.Player
}

// New creates a fixture provider with the built-in roster.
func New() *Provider {
	return &Provider{roster: baseRoster()}
}

// FetchPlayers returns one page starting at cursor, ending with a nil
// cursor once the roster is exhausted.
func (p *Provider) FetchPlayers(ctx context.Context, cursor *int, perPage int) (providers.Page, error) {
	if err := ctx.Err(); err != nil {
		return providers.Page{}, &providers.NetworkError{Provider: "fixture", Err: err}
	}
	if perPage <= 0 {
		perPage = 10
	}

	start := 0
	if cursor != nil {
		start = *cursor
	}
	if start < 0 {
		start = 0
	}
	if start >= len(p.roster) {
		return providers.Page{}, nil
	}

	end := start + perPage
	if end > len(p.roster) {
		end = len(p.roster)
	}

	page := providers.Page{
		Players: make([]players.Player, end-start),
	}
	copy(page.Players, p.roster[start:end])
	if end < len(p.roster) {
		next := end
		page.NextCursor = &next
	}
	return page, nil
}

func baseRoster() []players.Player {
	celtics := &franchises.Franchise{ID: 2, Name: "Celtics", City: "Boston", Conference: "East", Division: "Atlantic"}
	lakers := &franchises.Franchise{ID: 14, Name: "Lakers", City: "Los Angeles", Conference: "West", Division: "Pacific"}
	warriors := &franchises.Franchise{ID: 10, Name: "Warriors", City: "San Francisco", Conference: "West", Division: "Pacific"}
	heat := &franchises.Franchise{ID: 16, Name: "Heat", City: "Miami", Conference: "East", Division: "Southeast"}

	return []players.Player{
		{ID: 101, FirstName: "Jane", LastName: "Doe", Position: "G", Franchise: celtics},
		{ID: 102, FirstName: "John", LastName: "Smith", Position: "F", Franchise: lakers},
		{ID: 103, FirstName: "Maya", LastName: "Jones", Position: "C", Franchise: warriors},
		{ID: 104, FirstName: "Liam", LastName: "Brown", Position: "G", Franchise: heat},
		{ID: 105, FirstName: "Ava", LastName: "Wilson", Position: "F", Franchise: celtics},
		{ID: 106, FirstName: "Noah", LastName: "Taylor", Position: "", Franchise: lakers},
		{ID: 107, FirstName: "Emma", LastName: "Davis", Position: "G-F", Franchise: warriors},
		{ID: 108, FirstName: "Ethan", LastName: "Clark", Position: "C", Franchise: heat},
		{ID: 109, FirstName: "Mia", LastName: "Lewis", Position: "F", Franchise: celtics},
		{ID: 110, FirstName: "Lucas", LastName: "Walker", Position: "G", Franchise: lakers},
		{ID: 111, FirstName: "Zoe", LastName: "Hall", Position: "F-C", Franchise: warriors},
		{ID: 112, FirstName: "Owen", LastName: "Young", Position: "G", Franchise: heat},
	}
}
