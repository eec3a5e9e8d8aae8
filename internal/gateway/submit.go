package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jala-youth/jala-web/internal/model"
	"github.com/jala-youth/jala-web/internal/validator"
)

// SubmissionKind names one of the public forms.
type SubmissionKind string

const (
	SubmitKindBooking      SubmissionKind = "booking"
	SubmitKindSubscription SubmissionKind = "subscription"
	SubmitKindFeedback     SubmissionKind = "feedback"
)

var submissionPaths = map[SubmissionKind]string{
	SubmitKindBooking:      "/api/bookings",
	SubmitKindSubscription: "/api/subscribe",
	SubmitKindFeedback:     "/api/feedback",
}

// Path returns the API endpoint for the kind, or "" when unknown.
func (k SubmissionKind) Path() string {
	return submissionPaths[k]
}

// Submit POSTs payload as JSON to the endpoint of kind. On 2xx the raw
// response body is returned. Payloads are not validated here; use the typed
// helpers for that.
func (c *Client) Submit(ctx context.Context, kind SubmissionKind, payload interface{}) Result[json.RawMessage] {
	path := kind.Path()
	if path == "" {
		return Fail[json.RawMessage](&Error{Kind: KindValidation, Message: "unknown form " + string(kind)})
	}

	op := "submit_" + string(kind)
	start := time.Now()

	rep, err := c.send(ctx, call{op: op, method: http.MethodPost, path: path, body: payload})
	if err != nil {
		gerr := &Error{Kind: KindConnectivity, Message: MsgUnreachable, Err: err}
		c.observe(op, start, gerr)
		return Fail[json.RawMessage](gerr)
	}

	if !rep.ok() {
		gerr := &Error{Kind: KindRequest, Message: MsgGeneric, Status: rep.status}
		if msg := rep.serverMessage(); msg != "" {
			gerr.Message = msg
			gerr.Detail = msg
		}
		c.log.Info().Str("op", op).Int("status", rep.status).Str("detail", gerr.Detail).Msg("Submission rejected")
		c.observe(op, start, gerr)
		return Fail[json.RawMessage](gerr)
	}

	c.observe(op, start, nil)
	return Ok(json.RawMessage(rep.body))
}

// SubmitBooking validates and sends a booking request.
func (c *Client) SubmitBooking(ctx context.Context, req model.BookingRequest) Result[json.RawMessage] {
	if fields := validator.ValidateBooking(req); len(fields) > 0 {
		return Fail[json.RawMessage](validationError(fields))
	}
	return c.Submit(ctx, SubmitKindBooking, req)
}

// Subscribe validates and sends a newsletter subscription.
func (c *Client) Subscribe(ctx context.Context, req model.SubscriptionRequest) Result[json.RawMessage] {
	if fields := validator.ValidateSubscription(req); len(fields) > 0 {
		return Fail[json.RawMessage](validationError(fields))
	}
	return c.Submit(ctx, SubmitKindSubscription, req)
}

// SubmitFeedback validates and sends a testimonial. The role defaults to student.
func (c *Client) SubmitFeedback(ctx context.Context, req model.FeedbackRequest) Result[json.RawMessage] {
	req = req.WithDefaults()
	if fields := validator.ValidateFeedback(req); len(fields) > 0 {
		return Fail[json.RawMessage](validationError(fields))
	}
	return c.Submit(ctx, SubmitKindFeedback, req)
}
