package store

import "sync"

// Session is the auth slice value. The zero value means logged out.
type Session struct {
	Username   string `json:"username"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// AuthSlice holds the current session.
type AuthSlice struct {
	mu       sync.RWMutex
	session  Session
	onChange func(Session)
}

// NewAuthSlice constructs a logged-out AuthSlice.
func NewAuthSlice() *AuthSlice {
	return &AuthSlice{}
}

// OnChange registers a callback invoked after every committed mutation.
// The callback runs outside the slice lock.
func (s *AuthSlice) OnChange(fn func(Session)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Login stores the username and marks the session logged in. The
// operation is total; trimming and empty checks belong to the caller.
func (s *AuthSlice) Login(username string) {
	s.mu.Lock()
	s.session = Session{Username: username, IsLoggedIn: true}
	snap, fn := s.session, s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// Logout resets the session to its initial value.
func (s *AuthSlice) Logout() {
	s.mu.Lock()
	s.session = Session{}
	snap, fn := s.session, s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// Session returns the current session value.
func (s *AuthSlice) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Restore rehydrates the slice from a persisted snapshot without
// notifying observers.
func (s *AuthSlice) Restore(session Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}
