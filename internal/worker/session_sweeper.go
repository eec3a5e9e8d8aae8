package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/metrics"
)

// SessionSweeper drops admin dashboards that have been idle for longer than
// the session lifetime and publishes how many remain.
type SessionSweeper struct {
	registry *dashboard.Registry
	metrics  *metrics.Metrics
	idle     time.Duration
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionSweeper creates a new SessionSweeper.
func NewSessionSweeper(registry *dashboard.Registry, m *metrics.Metrics, idle, interval time.Duration, log zerolog.Logger) *SessionSweeper {
	return &SessionSweeper{
		registry: registry,
		metrics:  m,
		idle:     idle,
		interval: interval,
		log:      log.With().Str("component", "session_sweeper").Logger(),
	}
}

// Start runs until ctx is cancelled. Call in a goroutine.
func (w *SessionSweeper) Start(ctx context.Context) {
	w.log.Info().Dur("idle", w.idle).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SessionSweeper) sweep() {
	if n := w.registry.Prune(w.idle); n > 0 {
		w.log.Debug().Int("pruned", n).Msg("Dropped idle admin dashboards")
	}
	w.metrics.SetAdminSessions(w.registry.Len())
}
