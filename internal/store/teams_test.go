package store

import (
	"testing"

	"roster-service/internal/domain/players"
	"roster-service/internal/domain/teams"
)

func newTeam(id, name string) teams.Team {
	return teams.Team{ID: id, Name: name, Region: "West", Country: "US"}
}

func TestPlayerCountTracksRosterThroughMutations(t *testing.T) {
	s := NewTeamSlice()
	s.Add(newTeam("t1", "Alpha"))

	assertCount := func(want int) {
		t.Helper()
		team, ok := s.TeamByID("t1")
		if !ok {
			t.Fatalf("team t1 missing")
		}
		if team.PlayerCount != len(team.Players) {
			t.Fatalf("playerCount %d != roster length %d", team.PlayerCount, len(team.Players))
		}
		if team.PlayerCount != want {
			t.Fatalf("expected count %d, got %d", want, team.PlayerCount)
		}
	}

	s.AddPlayer("t1", players.Player{ID: 1, FirstName: "A"})
	assertCount(1)
	s.AddPlayer("t1", players.Player{ID: 2, FirstName: "B"})
	assertCount(2)
	s.RemovePlayer("t1", 1)
	assertCount(1)
	s.RemovePlayer("t1", 99) // missing player, no-op
	assertCount(1)
	s.AddPlayer("t1", players.Player{ID: 3, FirstName: "C"})
	assertCount(2)
	s.RemovePlayer("t1", 2)
	s.RemovePlayer("t1", 3)
	assertCount(0)
}

func TestAddPlayerToMissingTeamIsNoOp(t *testing.T) {
	s := NewTeamSlice()
	s.Add(newTeam("t1", "Alpha"))

	notified := 0
	s.OnChange(func([]teams.Team) { notified++ })

	s.AddPlayer("missing", players.Player{ID: 1})

	if notified != 0 {
		t.Fatalf("no-op mutation must not notify, got %d", notified)
	}
	team, _ := s.TeamByID("t1")
	if team.PlayerCount != 0 {
		t.Fatalf("unexpected roster change %+v", team)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewTeamSlice()
	s.Add(newTeam("t1", "Alpha"))
	s.Add(newTeam("t2", "Beta"))

	s.Delete("t1")
	after := s.Teams()

	s.Delete("t1")
	again := s.Teams()

	if len(after) != 1 || len(again) != 1 {
		t.Fatalf("expected 1 team after deletes, got %d then %d", len(after), len(again))
	}
	if again[0].ID != "t2" {
		t.Fatalf("expected t2 to survive, got %s", again[0].ID)
	}
}

func TestUpdateReplacesFieldsAndKeepsRoster(t *testing.T) {
	s := NewTeamSlice()
	s.Add(newTeam("t1", "Alpha"))
	s.AddPlayer("t1", players.Player{ID: 7, FirstName: "G"})

	s.Update("t1", "Alpha Prime", "East", "CA")

	team, ok := s.TeamByID("t1")
	if !ok {
		t.Fatalf("team missing after update")
	}
	if team.Name != "Alpha Prime" || team.Region != "East" || team.Country != "CA" {
		t.Fatalf("fields not updated: %+v", team)
	}
	if team.PlayerCount != 1 || !team.HasPlayer(7) {
		t.Fatalf("roster should be untouched: %+v", team)
	}

	// Missing id stays a silent no-op.
	s.Update("ghost", "X", "Y", "Z")
	if got := s.Teams(); len(got) != 1 {
		t.Fatalf("unexpected team list %+v", got)
	}
}

func TestTeamContainingScansInInsertionOrder(t *testing.T) {
	s := NewTeamSlice()
	s.Add(newTeam("t1", "Alpha"))
	s.Add(newTeam("t2", "Beta"))
	s.AddPlayer("t2", players.Player{ID: 5})

	if _, ok := s.TeamContaining(5); !ok {
		t.Fatalf("expected player 5 to be found")
	}
	team, _ := s.TeamContaining(5)
	if team.ID != "t2" {
		t.Fatalf("expected t2, got %s", team.ID)
	}
	if _, ok := s.TeamContaining(42); ok {
		t.Fatalf("expected player 42 to be unassigned")
	}
}

func TestTeamsReturnsDeepCopy(t *testing.T) {
	s := NewTeamSlice()
	s.Add(newTeam("t1", "Alpha"))
	s.AddPlayer("t1", players.Player{ID: 1, FirstName: "original"})

	list := s.Teams()
	list[0].Players[0].FirstName = "mutated"
	list[0].Name = "mutated"

	team, _ := s.TeamByID("t1")
	if team.Name != "Alpha" || team.Players[0].FirstName != "original" {
		t.Fatalf("store state leaked through copies: %+v", team)
	}
}

func TestRestoreRecomputesPlayerCount(t *testing.T) {
	s := NewTeamSlice()
	notified := false
	s.OnChange(func([]teams.Team) { notified = true })

	s.Restore([]teams.Team{{
		ID:          "t1",
		Name:        "Alpha",
		Players:     []players.Player{{ID: 1}, {ID: 2}},
		PlayerCount: 99, // stale persisted value
	}})

	if notified {
		t.Fatalf("restore must not notify observers")
	}
	team, _ := s.TeamByID("t1")
	if team.PlayerCount != 2 {
		t.Fatalf("expected recomputed count 2, got %d", team.PlayerCount)
	}
}
