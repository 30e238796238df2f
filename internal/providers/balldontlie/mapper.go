package balldontlie

import (
	"roster-service/internal/domain/franchises"
	"roster-service/internal/domain/players"
)

func mapPlayer(in playerResponse) players.Player {
	out := players.Player{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Position:  in.Position,
	}
	if in.Team != nil {
		out.Franchise = &franchises.Franchise{
			ID:         in.Team.ID,
			Name:       resolveTeamName(*in.Team),
			City:       in.Team.City,
			Conference: in.Team.Conference,
			Division:   in.Team.Division,
		}
	}
	return out
}

func resolveTeamName(in teamResponse) string {
	if in.Name != "" {
		return in.Name
	}
	return in.FullName
}
