package dashboard

import (
	"sync"
	"time"
)

// Factory builds the dashboard for a new server-side admin session.
type Factory func(sessionID string) *Dashboard

type entry struct {
	dash     *Dashboard
	lastSeen time.Time
}

// Registry keeps one dashboard per admin session.
type Registry struct {
	factory Factory
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry(factory Factory) *Registry {
	return &Registry{factory: factory, now: time.Now, entries: map[string]*entry{}}
}

// Get returns the dashboard for sessionID, creating it on first use.
func (r *Registry) Get(sessionID string) *Dashboard {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{dash: r.factory(sessionID)}
		r.entries[sessionID] = e
	}
	e.lastSeen = r.now()
	return e.dash
}

// Remove forgets sessionID.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// Prune drops dashboards not used within idle and returns how many went.
func (r *Registry) Prune(idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// Len reports the number of live dashboards.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
