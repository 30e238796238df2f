package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// catalog page cycles, and persistence writes. It is intentionally simple
// so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats

	pageCycles    int
	pageErrors    int
	persistWrites int
	persistErrors int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordPageCycle tracks one catalog page fetch cycle.
func (r *Recorder) RecordPageCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.pageCycles++
	if err != nil {
		r.pageErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPageCycle(duration, err)
	}
}

// RecordPersistWrite tracks one snapshot write to durable storage.
func (r *Recorder) RecordPersistWrite(slice string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.persistWrites++
	if err != nil {
		r.persistErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPersistWrite(slice, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// PageCycles returns the total catalog page cycles recorded.
func (r *Recorder) PageCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pageCycles
}

// PersistWrites returns the total snapshot writes recorded.
func (r *Recorder) PersistWrites() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persistWrites
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}
