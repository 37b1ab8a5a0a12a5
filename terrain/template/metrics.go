package template

import "sync"

// Metrics tracks cache counters for observability.
type Metrics struct {
	mu sync.Mutex

	hits     uint64
	builds   uint64
	releases uint64
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncHits increments the counter of requests served from the registry.
func (m *Metrics) IncHits() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.hits++
	m.mu.Unlock()
}

// IncBuilds increments the counter of templates constructed.
func (m *Metrics) IncBuilds() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.builds++
	m.mu.Unlock()
}

// IncReleases increments the counter of templates released by Clear.
func (m *Metrics) IncReleases() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.releases++
	m.mu.Unlock()
}

// Stats is a point-in-time copy of the cache counters.
type Stats struct {
	Hits     uint64
	Builds   uint64
	Releases uint64
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Hits: m.hits, Builds: m.builds, Releases: m.releases}
}
