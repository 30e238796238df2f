package store

import (
	"testing"

	"roster-service/internal/domain/players"
)

func intPtr(v int) *int { return &v }

func TestAddPlayersDedupsFirstSeen(t *testing.T) {
	s := NewCatalogSlice()
	s.SetPlayers([]players.Player{{ID: 1, FirstName: "one"}, {ID: 2, FirstName: "two"}}, intPtr(3))

	s.AddPlayers([]players.Player{
		{ID: 2, FirstName: "dup"},
		{ID: 3, FirstName: "three"},
		{ID: 3, FirstName: "dup-in-batch"},
		{ID: 4, FirstName: "four"},
	}, intPtr(5))

	got := s.Players()
	wantIDs := []int{1, 2, 3, 4}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d players, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
	// First-seen wins: id 2 keeps its original name.
	if got[1].FirstName != "two" || got[2].FirstName != "three" {
		t.Fatalf("dedup did not keep first-seen values: %+v", got)
	}
	if cursor := s.NextCursor(); cursor == nil || *cursor != 5 {
		t.Fatalf("expected cursor 5, got %v", cursor)
	}
}

func TestSetPlayersReplacesListAndClearsError(t *testing.T) {
	s := NewCatalogSlice()
	s.SetPlayers([]players.Player{{ID: 1}}, intPtr(2))
	s.SetError("upstream down")

	s.SetPlayers([]players.Player{{ID: 9}}, nil)

	snap := s.Snapshot()
	if len(snap.Players) != 1 || snap.Players[0].ID != 9 {
		t.Fatalf("expected replaced list, got %+v", snap.Players)
	}
	if snap.NextCursor != nil {
		t.Fatalf("expected nil cursor, got %v", snap.NextCursor)
	}
	if snap.Error != "" {
		t.Fatalf("expected error cleared, got %q", snap.Error)
	}
	// Replaced list forgets previously seen ids.
	s.AddPlayers([]players.Player{{ID: 1}}, nil)
	if len(s.Players()) != 2 {
		t.Fatalf("expected id 1 to be addable after replace")
	}
}

func TestLoadingAndErrorFlagsAreIndependent(t *testing.T) {
	s := NewCatalogSlice()
	s.SetLoading(true)
	s.SetError("boom")

	snap := s.Snapshot()
	if !snap.Loading || snap.Error != "boom" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	s.SetError("")
	if got := s.Snapshot(); got.Error != "" || !got.Loading {
		t.Fatalf("clearing error must not touch loading: %+v", got)
	}
}

func TestResetReturnsToInitialState(t *testing.T) {
	s := NewCatalogSlice()
	s.SetPlayers([]players.Player{{ID: 1}}, intPtr(2))
	s.SetLoading(true)
	s.SetError("boom")

	s.Reset()

	snap := s.Snapshot()
	if len(snap.Players) != 0 || snap.NextCursor != nil || snap.Loading || snap.Error != "" {
		t.Fatalf("expected initial state, got %+v", snap)
	}
}

func TestPlayerByID(t *testing.T) {
	s := NewCatalogSlice()
	s.SetPlayers([]players.Player{{ID: 1, FirstName: "one"}, {ID: 2, FirstName: "two"}}, nil)

	p, ok := s.PlayerByID(2)
	if !ok || p.FirstName != "two" {
		t.Fatalf("expected player 2, got %+v ok=%v", p, ok)
	}
	if _, ok := s.PlayerByID(42); ok {
		t.Fatalf("expected missing player")
	}
}

func TestSnapshotReturnsCopies(t *testing.T) {
	s := NewCatalogSlice()
	s.SetPlayers([]players.Player{{ID: 1, FirstName: "original"}}, intPtr(7))

	snap := s.Snapshot()
	snap.Players[0].FirstName = "mutated"
	*snap.NextCursor = 99

	if got := s.Players(); got[0].FirstName != "original" {
		t.Fatalf("snapshot leaked list backing array")
	}
	if cursor := s.NextCursor(); *cursor != 7 {
		t.Fatalf("snapshot leaked cursor pointer")
	}
}
