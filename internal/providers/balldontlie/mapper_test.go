package balldontlie

import "testing"

func TestMapPlayerPrefersShortTeamName(t *testing.T) {
	in := playerResponse{
		ID:        7,
		FirstName: "Jane",
		LastName:  "Doe",
		Position:  "C",
		Team: &teamResponse{
			ID:       3,
			Name:     "Lakers",
			FullName: "Los Angeles Lakers",
			City:     "Los Angeles",
		},
	}

	out := mapPlayer(in)
	if out.ID != 7 || out.FirstName != "Jane" || out.LastName != "Doe" || out.Position != "C" {
		t.Fatalf("unexpected player %+v", out)
	}
	if out.Franchise == nil || out.Franchise.Name != "Lakers" {
		t.Fatalf("expected short team name, got %+v", out.Franchise)
	}
}

func TestMapPlayerFallsBackToFullName(t *testing.T) {
	in := playerResponse{ID: 8, Team: &teamResponse{ID: 4, FullName: "Boston Celtics"}}
	out := mapPlayer(in)
	if out.Franchise.Name != "Boston Celtics" {
		t.Fatalf("expected full name fallback, got %q", out.Franchise.Name)
	}
}

func TestMapPlayerWithoutTeam(t *testing.T) {
	out := mapPlayer(playerResponse{ID: 9, FirstName: "Solo"})
	if out.Franchise != nil {
		t.Fatalf("expected nil franchise, got %+v", out.Franchise)
	}
}
