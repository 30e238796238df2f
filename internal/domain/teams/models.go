package teams

import (
	"roster-service/internal/domain/players"
)

// Team is a user-owned roster team. PlayerCount is derived from the
// roster and must equal len(Players) after every mutation.
type Team struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Region      string           `json:"region"`
	Country     string           `json:"country"`
	Players     []players.Player `json:"players"`
	PlayerCount int              `json:"playerCount"`
}

// Clone returns a deep copy so callers can hand teams out without
// sharing roster backing arrays.
func (t Team) Clone() Team {
	out := t
	if t.Players != nil {
		out.Players = make([]players.Player, len(t.Players))
		copy(out.Players, t.Players)
	}
	return out
}

// HasPlayer reports whether the roster contains the given player id.
func (t Team) HasPlayer(playerID int) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
