package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jala-youth/jala-web/internal/gateway"
)

var (
	ErrBusy             = errors.New("dashboard: operation already in progress")
	ErrNotAuthenticated = errors.New("dashboard: not authenticated")
	ErrUnknownTab       = errors.New("dashboard: unknown tab")
	ErrNoPendingDelete  = errors.New("dashboard: no delete awaiting confirmation")
	ErrUnknownAction    = errors.New("dashboard: unknown action")
)

// Dashboard is the admin view-model. It is safe for concurrent use; remote
// calls are made without holding the lock.
type Dashboard struct {
	session *gateway.Session
	log     zerolog.Logger

	mu       sync.Mutex
	state    Snapshot
	gen      uint64
	deleting bool
}

// New creates a dashboard driven by session. Any deauthentication of the
// session clears the cached collections.
func New(session *gateway.Session, log zerolog.Logger) *Dashboard {
	d := &Dashboard{
		session: session,
		log:     log.With().Str("component", "dashboard").Logger(),
		state:   freshSnapshot(),
	}
	session.OnDeauthenticate(d.reset)
	return d
}

// Snapshot returns a copy of the current state.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

// Dispatch applies a single action. Failures are also recorded in the state,
// so callers may render the snapshot regardless of the returned error.
func (d *Dashboard) Dispatch(ctx context.Context, a Action) error {
	switch a := a.(type) {
	case Login:
		return d.login(ctx, a.Password)
	case Logout:
		return d.session.Logout(ctx)
	case Resume:
		return d.resume(ctx)
	case SelectTab:
		return d.selectTab(ctx, a.Tab)
	case Refresh:
		return d.refresh(ctx, a.Tab)
	case RequestDelete:
		return d.requestDelete(a.Kind, a.ID)
	case ConfirmDelete:
		return d.confirmDelete(ctx, a.Kind, a.ID)
	case CancelDelete:
		d.mu.Lock()
		d.state.Pending = nil
		d.mu.Unlock()
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

// reset drops everything cached for the previous session.
func (d *Dashboard) reset() {
	d.mu.Lock()
	d.gen++
	d.deleting = false
	d.state = freshSnapshot()
	d.mu.Unlock()
	d.log.Debug().Msg("Dashboard cleared")
}

func (d *Dashboard) login(ctx context.Context, password string) error {
	d.mu.Lock()
	if d.state.Auth == Authenticating {
		d.mu.Unlock()
		return ErrBusy
	}
	d.state.Auth = Authenticating
	d.state.AuthError = ""
	d.mu.Unlock()

	res := d.session.Login(ctx, password)

	d.mu.Lock()
	if !res.OK {
		d.gen++
		active := d.state.Active
		d.state = freshSnapshot()
		d.state.Active = active
		d.state.AuthError = res.Err.Message
		d.mu.Unlock()
		return res.Err
	}
	d.authenticated()
	d.mu.Unlock()

	return d.load(ctx, TabOverview, true)
}

func (d *Dashboard) resume(ctx context.Context) error {
	if !d.session.Resume(ctx) {
		return ErrNotAuthenticated
	}
	d.mu.Lock()
	already := d.state.Auth == Authenticated
	if !already {
		d.authenticated()
	}
	d.mu.Unlock()
	if already {
		return nil
	}
	return d.load(ctx, TabOverview, true)
}

// authenticated starts a new session generation. Must hold d.mu.
func (d *Dashboard) authenticated() {
	d.gen++
	fresh := freshSnapshot()
	fresh.Auth = Authenticated
	fresh.Active = d.state.Active
	d.state = fresh
}

func (d *Dashboard) selectTab(ctx context.Context, tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	d.mu.Lock()
	if d.state.Auth != Authenticated {
		d.mu.Unlock()
		return ErrNotAuthenticated
	}
	d.state.Active = tab
	d.mu.Unlock()
	return d.load(ctx, tab, false)
}

func (d *Dashboard) refresh(ctx context.Context, tab Tab) error {
	if tab == "" {
		d.mu.Lock()
		tab = d.state.Active
		d.mu.Unlock()
	}
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	return d.load(ctx, tab, true)
}

// load fetches tab unless it is already loaded and force is false. At most
// one fetch per tab is in flight.
func (d *Dashboard) load(ctx context.Context, tab Tab, force bool) error {
	d.mu.Lock()
	if d.state.Auth != Authenticated {
		d.mu.Unlock()
		return ErrNotAuthenticated
	}
	ts := d.state.Tabs[tab]
	if ts.Status == StatusLoading {
		d.mu.Unlock()
		return ErrBusy
	}
	if ts.Status == StatusLoaded && !force {
		d.mu.Unlock()
		return nil
	}
	d.state.Tabs[tab] = TabState{Status: StatusLoading}
	gen := d.gen
	d.mu.Unlock()

	apply, gerr := d.fetch(ctx, tab)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		// The session ended while the fetch was in flight.
		d.log.Debug().Str("tab", string(tab)).Msg("Discarding stale result")
		if gerr != nil {
			return gerr
		}
		return nil
	}
	if gerr != nil {
		d.state.Tabs[tab] = TabState{Status: StatusError, Error: gerr.Message}
		d.log.Warn().Str("tab", string(tab)).Str("kind", gerr.Kind.String()).Msg(gerr.Error())
		return gerr
	}
	apply(&d.state)
	d.state.Tabs[tab] = TabState{Status: StatusLoaded}
	return nil
}

func (d *Dashboard) fetch(ctx context.Context, tab Tab) (func(*Snapshot), *gateway.Error) {
	switch tab {
	case TabOverview:
		res := d.session.FetchStats(ctx)
		if !res.OK {
			return nil, res.Err
		}
		return func(s *Snapshot) { stats := res.Value; s.Stats = &stats }, nil
	case TabSubscriptions:
		res := d.session.FetchSubscriptions(ctx)
		if !res.OK {
			return nil, res.Err
		}
		return func(s *Snapshot) { s.Subscriptions = res.Value }, nil
	case TabBookings:
		res := d.session.FetchBookings(ctx)
		if !res.OK {
			return nil, res.Err
		}
		return func(s *Snapshot) { s.Bookings = res.Value }, nil
	default:
		res := d.session.FetchFeedback(ctx)
		if !res.OK {
			return nil, res.Err
		}
		return func(s *Snapshot) { s.Feedback = res.Value }, nil
	}
}
