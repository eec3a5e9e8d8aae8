// Package form holds the view-models behind the public submission forms.
package form

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/model"
	"github.com/jala-youth/jala-web/internal/validator"
)

// ErrInFlight is returned when a submission is already running.
var ErrInFlight = errors.New("form: submission already in progress")

// State is the lifecycle of a form.
type State int

const (
	Idle State = iota
	Submitting
	Submitted
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// MarshalText renders the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Success messages shown once a submission is accepted.
const (
	BookingThanks    = "Thank you! We’ll be in touch shortly to confirm your details."
	NewsletterThanks = "Thank you!"
	FeedbackThanks   = "Thank you for sharing your experience!"
)

// SubmitFunc sends one request to the remote API.
type SubmitFunc[T any] func(ctx context.Context, req T) gateway.Result[json.RawMessage]

// View is what a form renders.
type View struct {
	State       State             `json:"state"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Error       string            `json:"error,omitempty"`
	Message     string            `json:"message,omitempty"`
}

// Form is the state machine of a single form. It only moves to Submitted
// after the remote API confirms the request.
type Form[T any] struct {
	submit SubmitFunc[T]
	thanks string

	mu   sync.Mutex
	view View
}

// New creates a form submitting through fn.
func New[T any](fn SubmitFunc[T], thanks string) *Form[T] {
	return &Form[T]{submit: fn, thanks: thanks}
}

// NewBooking creates the "book a session" form. Non-digits are dropped from
// the phone number before validation.
func NewBooking(c *gateway.Client) *Form[model.BookingRequest] {
	return New(func(ctx context.Context, req model.BookingRequest) gateway.Result[json.RawMessage] {
		req.ParentPhone = validator.NormalizePhone(req.ParentPhone)
		return c.SubmitBooking(ctx, req)
	}, BookingThanks)
}

// NewNewsletter creates the newsletter sign-up form.
func NewNewsletter(c *gateway.Client) *Form[model.SubscriptionRequest] {
	return New(c.Subscribe, NewsletterThanks)
}

// NewFeedback creates the "share your experience" form.
func NewFeedback(c *gateway.Client) *Form[model.FeedbackRequest] {
	return New(c.SubmitFeedback, FeedbackThanks)
}

// Submit sends req. Only one submission runs at a time; a second call while
// one is running returns ErrInFlight without contacting the API.
func (f *Form[T]) Submit(ctx context.Context, req T) error {
	f.mu.Lock()
	if f.view.State == Submitting {
		f.mu.Unlock()
		return ErrInFlight
	}
	f.view = View{State: Submitting}
	f.mu.Unlock()

	res := f.submit(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !res.OK {
		f.view = View{State: Failed, Error: res.Err.Message, FieldErrors: res.Err.Fields}
		return res.Err
	}
	f.view = View{State: Submitted, Message: f.thanks}
	return nil
}

// View returns a copy of the current view.
func (f *Form[T]) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.view
	if v.FieldErrors != nil {
		v.FieldErrors = make(map[string]string, len(f.view.FieldErrors))
		for k, msg := range f.view.FieldErrors {
			v.FieldErrors[k] = msg
		}
	}
	return v
}

// Reset returns the form to Idle, e.g. when the modal is closed. It has no
// effect while a submission is running.
func (f *Form[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.view.State != Submitting {
		f.view = View{}
	}
}
