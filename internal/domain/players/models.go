package players

import (
	"roster-service/internal/domain/franchises"
)

// Player represents the normalized catalog player shape
// (balldontlie-aligned). Players are immutable once fetched; roster
// membership copies the value, it never mutates it.
type Player struct {
	ID        int                   `json:"id"`
	FirstName string                `json:"firstName"`
	LastName  string                `json:"lastName"`
	Position  string                `json:"position"`
	Franchise *franchises.Franchise `json:"team,omitempty"`
}

// FullName returns the display name used in logs.
func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
