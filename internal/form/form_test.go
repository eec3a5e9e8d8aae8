package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/model"
	"github.com/jala-youth/jala-web/internal/validator"
)

func validBooking() model.BookingRequest {
	return model.BookingRequest{
		ParentName:   "Amina Otieno",
		ParentPhone:  "0712345678",
		StudentName:  "Zawadi",
		StudentGrade: "Form 2",
	}
}

func TestBookingSubmitsOnce(t *testing.T) {
	var posts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/bookings" {
			atomic.AddInt32(&posts, 1)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	f := NewBooking(gateway.NewClient(srv.URL))
	require.NoError(t, f.Submit(context.Background(), validBooking()))

	v := f.View()
	assert.Equal(t, Submitted, v.State)
	assert.Equal(t, BookingThanks, v.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&posts))
}

func TestConcurrentSubmitIsRejected(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	f := New(func(ctx context.Context, req model.SubscriptionRequest) gateway.Result[json.RawMessage] {
		atomic.AddInt32(&calls, 1)
		<-release
		return gateway.Ok(json.RawMessage(`{}`))
	}, NewsletterThanks)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, f.Submit(context.Background(), model.SubscriptionRequest{Email: "a@b.co"}))
	}()

	require.Eventually(t, func() bool { return f.View().State == Submitting }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, f.Submit(context.Background(), model.SubscriptionRequest{Email: "a@b.co"}), ErrInFlight)

	f.Reset()
	assert.Equal(t, Submitting, f.View().State)

	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, Submitted, f.View().State)
}

func TestValidationFailureKeepsFieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	f := NewBooking(gateway.NewClient(srv.URL))
	req := validBooking()
	req.ParentPhone = "12345"

	err := f.Submit(context.Background(), req)

	assert.ErrorIs(t, err, gateway.ErrValidation)
	v := f.View()
	assert.Equal(t, Failed, v.State)
	assert.Equal(t, validator.MsgPhoneInvalid, v.FieldErrors["parentPhone"])

	f.Reset()
	assert.Equal(t, View{}, f.View())
}

func TestServerMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Email already subscribed"}`))
	}))
	defer srv.Close()

	f := NewNewsletter(gateway.NewClient(srv.URL))
	err := f.Submit(context.Background(), model.SubscriptionRequest{Email: "a@b.co"})

	assert.ErrorIs(t, err, gateway.ErrRequest)
	v := f.View()
	assert.Equal(t, Failed, v.State)
	assert.Equal(t, "Email already subscribed", v.Error)
}

func TestFeedbackForm(t *testing.T) {
	var got model.FeedbackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	f := NewFeedback(gateway.NewClient(srv.URL))
	require.NoError(t, f.Submit(context.Background(), model.FeedbackRequest{Name: "Baraka", Rating: 5, Comment: "Loved it"}))

	assert.Equal(t, model.FeedbackRoleStudent, got.Role)
	assert.Equal(t, FeedbackThanks, f.View().Message)
}

func TestBookingPhoneIsNormalised(t *testing.T) {
	var got model.BookingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	req := validBooking()
	req.ParentPhone = "0712 345-678"
	require.NoError(t, NewBooking(gateway.NewClient(srv.URL)).Submit(context.Background(), req))
	assert.Equal(t, "0712345678", got.ParentPhone)
}
