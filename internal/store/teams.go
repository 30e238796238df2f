package store

import (
	"sync"

	"roster-service/internal/domain/players"
	"roster-service/internal/domain/teams"
)

// TeamSlice holds the user-defined teams in insertion order. Every
// mutation keeps PlayerCount equal to the roster length. Name
// validation happens in the roster service before dispatch; the slice
// mutations themselves are total.
type TeamSlice struct {
	mu       sync.RWMutex
	teams    []teams.Team
	onChange func([]teams.Team)
}

// NewTeamSlice constructs an empty TeamSlice.
func NewTeamSlice() *TeamSlice {
	return &TeamSlice{}
}

// OnChange registers a callback invoked after every committed mutation.
// The callback runs outside the slice lock and receives a deep copy.
func (s *TeamSlice) OnChange(fn func([]teams.Team)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Add appends a team.
func (s *TeamSlice) Add(team teams.Team) {
	s.mu.Lock()
	team.PlayerCount = len(team.Players)
	s.teams = append(s.teams, team.Clone())
	snap, fn := s.cloneLocked(), s.onChange
	s.mu.Unlock()

	s.notify(fn, snap)
}

// Update replaces name/region/country in place. Roster and player
// count are untouched. A missing id is a silent no-op.
func (s *TeamSlice) Update(id, name, region, country string) {
	s.mu.Lock()
	changed := false
	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams[i].Name = name
			s.teams[i].Region = region
			s.teams[i].Country = country
			changed = true
			break
		}
	}
	var snap []teams.Team
	var fn func([]teams.Team)
	if changed {
		snap, fn = s.cloneLocked(), s.onChange
	}
	s.mu.Unlock()

	if changed {
		s.notify(fn, snap)
	}
}

// Delete removes the team with the given id. Deleting a missing id is
// a no-op, so the operation is idempotent.
func (s *TeamSlice) Delete(id string) {
	s.mu.Lock()
	changed := false
	kept := s.teams[:0]
	for _, t := range s.teams {
		if t.ID == id {
			changed = true
			continue
		}
		kept = append(kept, t)
	}
	s.teams = kept
	var snap []teams.Team
	var fn func([]teams.Team)
	if changed {
		snap, fn = s.cloneLocked(), s.onChange
	}
	s.mu.Unlock()

	if changed {
		s.notify(fn, snap)
	}
}

// AddPlayer appends the player to the team roster and recomputes the
// player count. A missing team is a silent no-op. Membership across
// teams is the caller's concern.
func (s *TeamSlice) AddPlayer(teamID string, player players.Player) {
	s.mu.Lock()
	changed := false
	for i := range s.teams {
		if s.teams[i].ID == teamID {
			s.teams[i].Players = append(s.teams[i].Players, player)
			s.teams[i].PlayerCount = len(s.teams[i].Players)
			changed = true
			break
		}
	}
	var snap []teams.Team
	var fn func([]teams.Team)
	if changed {
		snap, fn = s.cloneLocked(), s.onChange
	}
	s.mu.Unlock()

	if changed {
		s.notify(fn, snap)
	}
}

// RemovePlayer drops any roster entry with the given player id and
// recomputes the player count. Missing team or player is a no-op.
func (s *TeamSlice) RemovePlayer(teamID string, playerID int) {
	s.mu.Lock()
	changed := false
	for i := range s.teams {
		if s.teams[i].ID != teamID {
			continue
		}
		kept := s.teams[i].Players[:0]
		for _, p := range s.teams[i].Players {
			if p.ID == playerID {
				changed = true
				continue
			}
			kept = append(kept, p)
		}
		s.teams[i].Players = kept
		s.teams[i].PlayerCount = len(kept)
		break
	}
	var snap []teams.Team
	var fn func([]teams.Team)
	if changed {
		snap, fn = s.cloneLocked(), s.onChange
	}
	s.mu.Unlock()

	if changed {
		s.notify(fn, snap)
	}
}

// Teams returns a deep copy of the current teams in insertion order.
func (s *TeamSlice) Teams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

// TeamByID returns a copy of a single team if present.
func (s *TeamSlice) TeamByID(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return teams.Team{}, false
}

// TeamContaining scans rosters in insertion order and returns the first
// team holding the player id.
func (s *TeamSlice) TeamContaining(playerID int) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.HasPlayer(playerID) {
			return t.Clone(), true
		}
	}
	return teams.Team{}, false
}

// Restore rehydrates the slice from a persisted snapshot without
// notifying observers. Player counts are recomputed so a hand-edited
// or stale snapshot cannot break the invariant.
func (s *TeamSlice) Restore(items []teams.Team) {
	s.mu.Lock()
	s.teams = make([]teams.Team, 0, len(items))
	for _, t := range items {
		clone := t.Clone()
		clone.PlayerCount = len(clone.Players)
		s.teams = append(s.teams, clone)
	}
	s.mu.Unlock()
}

func (s *TeamSlice) cloneLocked() []teams.Team {
	out := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t.Clone())
	}
	return out
}

func (s *TeamSlice) notify(fn func([]teams.Team), snap []teams.Team) {
	if fn != nil {
		fn(snap)
	}
}
