package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jala-youth/jala-web/internal/form"
	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/model"
	"github.com/jala-youth/jala-web/internal/response"
)

// FormHandler relays the public forms to the remote API.
type FormHandler struct {
	client *gateway.Client
	log    zerolog.Logger
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(client *gateway.Client, log zerolog.Logger) *FormHandler {
	return &FormHandler{client: client, log: log.With().Str("component", "form_handler").Logger()}
}

// SubmitBooking godoc
// POST /api/v1/forms/bookings
func (h *FormHandler) SubmitBooking(c *gin.Context) {
	var req model.BookingRequest
	if !decodeJSON(c, &req) {
		return
	}
	submit(c, h.log, form.NewBooking(h.client), req)
}

// Subscribe godoc
// POST /api/v1/forms/subscribe
func (h *FormHandler) Subscribe(c *gin.Context) {
	var req model.SubscriptionRequest
	if !decodeJSON(c, &req) {
		return
	}
	submit(c, h.log, form.NewNewsletter(h.client), req)
}

// SubmitFeedback godoc
// POST /api/v1/forms/feedback
func (h *FormHandler) SubmitFeedback(c *gin.Context) {
	var req model.FeedbackRequest
	if !decodeJSON(c, &req) {
		return
	}
	submit(c, h.log, form.NewFeedback(h.client), req)
}

// decodeJSON reads the body without running the binding rules: the form
// view-models validate after normalising input.
func decodeJSON(c *gin.Context, dst interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return false
	}
	return true
}

// submit runs one request as a single action on a fresh form, so the
// in-flight guard only applies to a form value shared across calls.
func submit[T any](c *gin.Context, log zerolog.Logger, f *form.Form[T], req T) {
	if err := f.Submit(c.Request.Context(), req); err != nil {
		log.Info().Err(err).Str("path", c.FullPath()).Msg("Form submission failed")
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f.View())
}
