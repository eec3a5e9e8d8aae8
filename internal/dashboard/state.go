package dashboard

import (
	"fmt"

	"github.com/jala-youth/jala-web/internal/model"
)

// AuthState is the admin authentication state.
type AuthState int

const (
	Unauthenticated AuthState = iota
	Authenticating
	Authenticated
)

func (s AuthState) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// MarshalText renders the state by name in JSON snapshots.
func (s AuthState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name.
func (s *AuthState) UnmarshalText(text []byte) error {
	for _, v := range []AuthState{Unauthenticated, Authenticating, Authenticated} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown auth state %q", text)
}

// Tab is one dashboard section.
type Tab string

const (
	TabOverview      Tab = "overview"
	TabSubscriptions Tab = Tab(model.KindSubscriptions)
	TabBookings      Tab = Tab(model.KindBookings)
	TabFeedback      Tab = Tab(model.KindFeedback)
)

// Tabs lists the dashboard sections in display order.
var Tabs = []Tab{TabOverview, TabSubscriptions, TabBookings, TabFeedback}

// ParseTab validates a tab name coming from user input.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

func tabFor(kind model.RecordKind) Tab {
	return Tab(kind)
}

// Status is the load state of a single tab.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// MarshalText renders the status by name in JSON snapshots.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for _, v := range []Status{StatusIdle, StatusLoading, StatusLoaded, StatusError} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown tab status %q", text)
}

// TabState is the load state of one tab plus the last failure message.
type TabState struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// PendingDelete is a delete awaiting explicit confirmation.
type PendingDelete struct {
	Kind   model.RecordKind `json:"kind"`
	ID     int              `json:"id"`
	Prompt string           `json:"prompt"`
}

// Snapshot is a point-in-time copy of the dashboard for rendering. It shares
// no memory with the dashboard.
type Snapshot struct {
	Auth          AuthState            `json:"auth"`
	AuthError     string               `json:"auth_error,omitempty"`
	Active        Tab                  `json:"active_tab"`
	Tabs          map[Tab]TabState     `json:"tabs"`
	Stats         *model.AdminStats    `json:"stats,omitempty"`
	Subscriptions []model.Subscription `json:"subscriptions"`
	Bookings      []model.Booking      `json:"bookings"`
	Feedback      []model.Feedback     `json:"feedback"`
	Pending       *PendingDelete       `json:"pending_delete,omitempty"`
	Alert         string               `json:"alert,omitempty"`
}

func freshSnapshot() Snapshot {
	tabs := make(map[Tab]TabState, len(Tabs))
	for _, t := range Tabs {
		tabs[t] = TabState{}
	}
	return Snapshot{
		Auth:          Unauthenticated,
		Active:        TabOverview,
		Tabs:          tabs,
		Subscriptions: []model.Subscription{},
		Bookings:      []model.Booking{},
		Feedback:      []model.Feedback{},
	}
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Tabs = make(map[Tab]TabState, len(s.Tabs))
	for k, v := range s.Tabs {
		out.Tabs[k] = v
	}
	if s.Stats != nil {
		stats := *s.Stats
		out.Stats = &stats
	}
	if s.Pending != nil {
		p := *s.Pending
		out.Pending = &p
	}
	out.Subscriptions = append([]model.Subscription{}, s.Subscriptions...)
	out.Bookings = append([]model.Booking{}, s.Bookings...)
	out.Feedback = append([]model.Feedback{}, s.Feedback...)
	return out
}

// ConfirmPrompt is the question shown before deleting a record of kind.
func ConfirmPrompt(kind model.RecordKind) string {
	return fmt.Sprintf("Are you sure you want to delete this %s?", kind.Singular())
}

// DeleteFailedAlert is shown when the remote API refuses a delete.
func DeleteFailedAlert(kind model.RecordKind) string {
	return fmt.Sprintf("Failed to delete %s", kind.Singular())
}
