// Package session exposes login/logout over the auth slice.
package session

import (
	"log/slog"
	"strings"

	"roster-service/internal/logging"
	"roster-service/internal/store"
)

// ErrEmptyUsername rejects a blank login before any state mutation.
var ErrEmptyUsername = &ValidationError{Message: "username must not be empty"}

// ValidationError marks input rejected at the service boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Service coordinates session operations over the auth slice.
type Service struct {
	auth   *store.AuthSlice
	logger *slog.Logger
}

// NewService constructs a Service with the provided auth slice.
func NewService(auth *store.AuthSlice, logger *slog.Logger) *Service {
	return &Service{auth: auth, logger: logger}
}

// Login trims the username and starts a session. The slice operation
// itself is total; the trim/empty check lives here at the boundary.
func (s *Service) Login(username string) (store.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return store.Session{}, ErrEmptyUsername
	}

	s.auth.Login(username)
	logging.Info(s.logger, "session started", slog.String("username", username))
	return s.auth.Session(), nil
}

// Logout resets the session to its initial value.
func (s *Service) Logout() {
	s.auth.Logout()
	logging.Info(s.logger, "session ended")
}

// Current returns the current session value.
func (s *Service) Current() store.Session {
	return s.auth.Session()
}
