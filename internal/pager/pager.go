// Package pager drives cursor pagination of the remote player catalog
// into the catalog slice: one in-flight page at a time, demand-driven.
package pager

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"roster-service/internal/logging"
	"roster-service/internal/metrics"
	"roster-service/internal/providers"
	"roster-service/internal/store"
)

// State is the pagination machine state.
type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StateErrored   State = "errored"
	StateExhausted State = "exhausted"
)

// Outcome reports what a trigger did.
type Outcome string

const (
	// OutcomeLoaded means a page was fetched and merged.
	OutcomeLoaded Outcome = "loaded"
	// OutcomeDropped means the trigger was ignored because a fetch was
	// already in flight.
	OutcomeDropped Outcome = "dropped"
	// OutcomeExhausted means there is no further page to fetch.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeFailed means the fetch failed; the machine is in Errored
	// until an explicit retry.
	OutcomeFailed Outcome = "failed"
)

// Pager merges catalog pages into the catalog slice. At most one page
// request is in flight at a time; extra triggers are dropped, not
// queued.
type Pager struct {
	provider providers.PlayerCatalog
	catalog  *store.CatalogSlice
	logger   *slog.Logger
	metrics  *metrics.Recorder
	pageSize int

	mu         sync.Mutex
	state      State
	loadedOnce bool
	lastErr    error
}

// New constructs a Pager in the Idle state.
func New(provider providers.PlayerCatalog, catalog *store.CatalogSlice, logger *slog.Logger, recorder *metrics.Recorder, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Pager{
		provider: provider,
		catalog:  catalog,
		logger:   logger,
		metrics:  recorder,
		pageSize: pageSize,
		state:    StateIdle,
	}
}

// State returns the current machine state.
func (p *Pager) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// LastError returns the error that moved the machine to Errored, if any.
func (p *Pager) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// LoadNext fetches the next catalog page and merges it into the
// catalog slice. Triggers while a fetch is in flight are dropped;
// triggers after exhaustion are no-ops. The context is threaded into
// the provider call, so caller cancellation aborts the fetch.
func (p *Pager) LoadNext(ctx context.Context) (Outcome, error) {
	p.mu.Lock()
	switch p.state {
	case StateLoading:
		p.mu.Unlock()
		return OutcomeDropped, nil
	case StateExhausted:
		p.mu.Unlock()
		return OutcomeExhausted, nil
	}
	first := !p.loadedOnce
	p.state = StateLoading
	p.mu.Unlock()

	cursor := p.catalog.NextCursor()
	p.catalog.SetLoading(true)

	start := time.Now()
	page, err := p.provider.FetchPlayers(ctx, cursor, p.pageSize)
	duration := time.Since(start)
	p.metrics.RecordPageCycle(duration, err)

	p.catalog.SetLoading(false)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.state = StateErrored
		p.lastErr = err
		p.catalog.SetError(err.Error())
		logging.Error(p.logger, "catalog page fetch failed", err,
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return OutcomeFailed, err
	}

	if first {
		p.catalog.SetPlayers(page.Players, page.NextCursor)
	} else {
		p.catalog.AddPlayers(page.Players, page.NextCursor)
	}
	p.loadedOnce = true
	p.lastErr = nil

	if page.NextCursor == nil {
		p.state = StateExhausted
	} else {
		p.state = StateIdle
	}

	logging.Info(p.logger, "catalog page merged",
		slog.Int(logging.FieldCount, len(page.Players)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		slog.Bool("exhausted", p.state == StateExhausted),
	)
	return OutcomeLoaded, nil
}

// Retry re-enters Loading from Errored on explicit user action. From
// any other state it is a dropped trigger.
func (p *Pager) Retry(ctx context.Context) (Outcome, error) {
	p.mu.Lock()
	if p.state != StateErrored {
		state := p.state
		p.mu.Unlock()
		if state == StateExhausted {
			return OutcomeExhausted, nil
		}
		return OutcomeDropped, nil
	}
	p.state = StateIdle
	p.lastErr = nil
	p.mu.Unlock()

	p.catalog.SetError("")
	return p.LoadNext(ctx)
}

// Reset clears the catalog slice and returns the machine to Idle.
func (p *Pager) Reset() {
	p.mu.Lock()
	p.state = StateIdle
	p.loadedOnce = false
	p.lastErr = nil
	p.mu.Unlock()

	p.catalog.Reset()
}
