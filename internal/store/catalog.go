package store

import (
	"sync"

	"roster-service/internal/domain/players"
)

// CatalogSnapshot is a consistent read of the catalog slice.
type CatalogSnapshot struct {
	Players    []players.Player `json:"players"`
	NextCursor *int             `json:"nextCursor"`
	Loading    bool             `json:"loading"`
	Error      string           `json:"error,omitempty"`
}

// CatalogSlice caches the pages fetched from the remote catalog. It is
// never persisted; a fresh session always starts empty.
type CatalogSlice struct {
	mu         sync.RWMutex
	players    []players.Player
	seen       map[int]struct{}
	nextCursor *int
	loading    bool
	err        string
}

// NewCatalogSlice constructs an empty CatalogSlice.
func NewCatalogSlice() *CatalogSlice {
	return &CatalogSlice{seen: make(map[int]struct{})}
}

// SetPlayers replaces the entire cached list and cursor. Used for the
// first page of a fresh load. Clears any prior error.
func (s *CatalogSlice) SetPlayers(items []players.Player, nextCursor *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = s.players[:0]
	s.seen = make(map[int]struct{}, len(items))
	for _, p := range items {
		if _, dup := s.seen[p.ID]; dup {
			continue
		}
		s.seen[p.ID] = struct{}{}
		s.players = append(s.players, p)
	}
	s.nextCursor = copyCursor(nextCursor)
	s.err = ""
}

// AddPlayers appends players whose id is not already cached, keeping
// first-seen order, then updates the cursor. Clears any prior error.
func (s *CatalogSlice) AddPlayers(items []players.Player, nextCursor *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range items {
		if _, dup := s.seen[p.ID]; dup {
			continue
		}
		s.seen[p.ID] = struct{}{}
		s.players = append(s.players, p)
	}
	s.nextCursor = copyCursor(nextCursor)
	s.err = ""
}

// SetLoading flips the loading flag independent of the data.
func (s *CatalogSlice) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// SetError records a fetch failure message. An empty message clears it.
func (s *CatalogSlice) SetError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// Reset returns the slice to its initial empty state.
func (s *CatalogSlice) Reset() {
	s.mu.Lock()
	s.players = nil
	s.seen = make(map[int]struct{})
	s.nextCursor = nil
	s.loading = false
	s.err = ""
	s.mu.Unlock()
}

// Players returns a copy of the cached list.
func (s *CatalogSlice) Players() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]players.Player, len(s.players))
	copy(out, s.players)
	return out
}

// PlayerByID returns a cached player by catalog id. This is the narrow
// query other slices' consumers use instead of reaching into the list.
func (s *CatalogSlice) PlayerByID(id int) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.seen[id]; !ok {
		return players.Player{}, false
	}
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return players.Player{}, false
}

// NextCursor returns a copy of the pagination cursor; nil means either
// "never fetched" or "end of data" depending on the pager state.
func (s *CatalogSlice) NextCursor() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCursor(s.nextCursor)
}

// Snapshot returns a consistent copy of the whole slice.
func (s *CatalogSlice) Snapshot() CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := CatalogSnapshot{
		Players:    make([]players.Player, len(s.players)),
		NextCursor: copyCursor(s.nextCursor),
		Loading:    s.loading,
		Error:      s.err,
	}
	copy(out.Players, s.players)
	return out
}

func copyCursor(cursor *int) *int {
	if cursor == nil {
		return nil
	}
	v := *cursor
	return &v
}
