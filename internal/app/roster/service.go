// Package roster manages the user-defined teams: CRUD plus roster
// membership against the cached player catalog.
package roster

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"roster-service/internal/domain/players"
	"roster-service/internal/domain/teams"
	"roster-service/internal/logging"
	"roster-service/internal/store"
)

var (
	// ErrEmptyTeamName rejects a blank team name.
	ErrEmptyTeamName = &ValidationError{Message: "team name must not be empty"}
	// ErrDuplicateTeamName rejects a name already used by another team,
	// compared case-insensitively.
	ErrDuplicateTeamName = &ValidationError{Message: "a team with this name already exists"}
	// ErrPlayerAssigned rejects assigning a player who is already on a
	// roster. Each player belongs to at most one team.
	ErrPlayerAssigned = errors.New("player is already assigned to a team")
	// ErrPlayerNotInCatalog rejects assigning a player id the catalog
	// has not loaded.
	ErrPlayerNotInCatalog = errors.New("player not found in catalog")
)

// ValidationError marks input rejected at the service boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PlayerLookup is the narrow catalog read the roster needs.
type PlayerLookup interface {
	PlayerByID(id int) (players.Player, bool)
}

// Service validates roster operations and applies them to the teams
// slice. The slice mutations themselves are total; every guard lives
// here.
type Service struct {
	teams   *store.TeamSlice
	catalog PlayerLookup
	logger  *slog.Logger
	newID   func() string
}

// NewService constructs a Service. Team ids are random UUIDs.
func NewService(teamSlice *store.TeamSlice, catalog PlayerLookup, logger *slog.Logger) *Service {
	return &Service{
		teams:   teamSlice,
		catalog: catalog,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// CreateTeam validates the name and appends a new empty team.
func (s *Service) CreateTeam(name, region, country string) (teams.Team, error) {
	name = strings.TrimSpace(name)
	if err := s.validateName(name, ""); err != nil {
		return teams.Team{}, err
	}

	team := teams.Team{
		ID:      s.newID(),
		Name:    name,
		Region:  strings.TrimSpace(region),
		Country: strings.TrimSpace(country),
	}
	s.teams.Add(team)
	logging.Info(s.logger, "team created", slog.String(logging.FieldTeamID, team.ID))

	created, _ := s.teams.TeamByID(team.ID)
	return created, nil
}

// UpdateTeam replaces a team's name, region and country. A missing id
// is a silent no-op reported via found.
func (s *Service) UpdateTeam(id, name, region, country string) (teams.Team, bool, error) {
	name = strings.TrimSpace(name)
	if err := s.validateName(name, id); err != nil {
		return teams.Team{}, false, err
	}

	if _, ok := s.teams.TeamByID(id); !ok {
		return teams.Team{}, false, nil
	}

	s.teams.Update(id, name, strings.TrimSpace(region), strings.TrimSpace(country))
	logging.Info(s.logger, "team updated", slog.String(logging.FieldTeamID, id))

	updated, ok := s.teams.TeamByID(id)
	return updated, ok, nil
}

// DeleteTeam removes a team and with it the roster assignments of its
// players. Deleting a missing id is a no-op.
func (s *Service) DeleteTeam(id string) {
	s.teams.Delete(id)
	logging.Info(s.logger, "team deleted", slog.String(logging.FieldTeamID, id))
}

// AssignPlayer adds a catalog player to a team roster. The player must
// be in the cached catalog and not already on any roster. A missing
// team id is a silent no-op reported via found.
func (s *Service) AssignPlayer(teamID string, playerID int) (teams.Team, bool, error) {
	player, ok := s.catalog.PlayerByID(playerID)
	if !ok {
		return teams.Team{}, false, ErrPlayerNotInCatalog
	}
	if _, assigned := s.teams.TeamContaining(playerID); assigned {
		return teams.Team{}, false, ErrPlayerAssigned
	}
	if _, ok := s.teams.TeamByID(teamID); !ok {
		return teams.Team{}, false, nil
	}

	s.teams.AddPlayer(teamID, player)
	logging.Info(s.logger, "player assigned",
		slog.String(logging.FieldTeamID, teamID),
		slog.Int(logging.FieldPlayerID, playerID),
	)

	team, ok := s.teams.TeamByID(teamID)
	return team, ok, nil
}

// UnassignPlayer removes a player from a team roster. Missing team or
// player is a no-op.
func (s *Service) UnassignPlayer(teamID string, playerID int) {
	s.teams.RemovePlayer(teamID, playerID)
	logging.Info(s.logger, "player unassigned",
		slog.String(logging.FieldTeamID, teamID),
		slog.Int(logging.FieldPlayerID, playerID),
	)
}

// Teams returns all teams in insertion order.
func (s *Service) Teams() []teams.Team {
	return s.teams.Teams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.teams.TeamByID(id)
}

// validateName rejects empty names and case-insensitive duplicates.
// excludeID skips the team being renamed so a no-change update passes.
func (s *Service) validateName(name, excludeID string) error {
	if name == "" {
		return ErrEmptyTeamName
	}
	for _, t := range s.teams.Teams() {
		if t.ID != excludeID && strings.EqualFold(t.Name, name) {
			return ErrDuplicateTeamName
		}
	}
	return nil
}
