// Package catalog exposes the cached player catalog and its demand
// driven pagination as one read/trigger surface.
package catalog

import (
	"context"

	"roster-service/internal/pager"
	"roster-service/internal/providers"
	"roster-service/internal/store"
)

// View is the catalog as handed to clients: the cached slice plus the
// pagination machine state.
type View struct {
	store.CatalogSnapshot
	State     pager.State `json:"state"`
	Exhausted bool        `json:"exhausted"`
	Hint      string      `json:"hint,omitempty"`
}

// Service wraps the catalog slice and its pager.
type Service struct {
	slice *store.CatalogSlice
	pager *pager.Pager
}

// NewService constructs a Service over an existing slice and pager.
func NewService(slice *store.CatalogSlice, p *pager.Pager) *Service {
	return &Service{slice: slice, pager: p}
}

// Snapshot returns a consistent view of the cached catalog. When the
// last failure was an authentication one, Hint carries a pointer to
// the credential so the caller can surface it.
func (s *Service) Snapshot() View {
	view := View{
		CatalogSnapshot: s.slice.Snapshot(),
		State:           s.pager.State(),
	}
	view.Exhausted = view.State == pager.StateExhausted
	if _, ok := providers.AsUnauthorizedError(s.pager.LastError()); ok {
		view.Hint = "check the BALLDONTLIE_API_KEY environment variable"
	}
	return view
}

// LoadNext triggers the next page fetch.
func (s *Service) LoadNext(ctx context.Context) (pager.Outcome, error) {
	return s.pager.LoadNext(ctx)
}

// Retry re-attempts the failed fetch. Only valid from the errored
// state; elsewhere the trigger is dropped.
func (s *Service) Retry(ctx context.Context) (pager.Outcome, error) {
	return s.pager.Retry(ctx)
}

// Reset clears the cached catalog and pagination state.
func (s *Service) Reset() {
	s.pager.Reset()
}
