package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jala-youth/jala-web/internal/model"
)

// FetchStats loads the dashboard summary.
func (s *Session) FetchStats(ctx context.Context) Result[model.AdminStats] {
	var env struct {
		Stats model.AdminStats `json:"stats"`
	}
	if err := s.AuthedRequest(ctx, "admin_stats", http.MethodGet, statsPath, &env); err != nil {
		return Fail[model.AdminStats](err)
	}
	return Ok(env.Stats)
}

// FetchSubscriptions lists newsletter subscriptions.
func (s *Session) FetchSubscriptions(ctx context.Context) Result[[]model.Subscription] {
	return fetchList[model.Subscription](ctx, s, model.KindSubscriptions)
}

// FetchBookings lists bookings.
func (s *Session) FetchBookings(ctx context.Context) Result[[]model.Booking] {
	return fetchList[model.Booking](ctx, s, model.KindBookings)
}

// FetchFeedback lists testimonials.
func (s *Session) FetchFeedback(ctx context.Context) Result[[]model.Feedback] {
	return fetchList[model.Feedback](ctx, s, model.KindFeedback)
}

func fetchList[T any](ctx context.Context, s *Session, kind model.RecordKind) Result[[]T] {
	var env struct {
		Data []T `json:"data"`
	}
	if err := s.AuthedRequest(ctx, "admin_list_"+string(kind), http.MethodGet, "/api/admin/"+string(kind), &env); err != nil {
		return Fail[[]T](err)
	}
	if env.Data == nil {
		env.Data = []T{}
	}
	return Ok(env.Data)
}

// DeleteRecord removes one record of kind. Callers are expected to have
// obtained an explicit confirmation first.
func (s *Session) DeleteRecord(ctx context.Context, kind model.RecordKind, id int) Result[struct{}] {
	if _, err := model.ParseRecordKind(string(kind)); err != nil {
		return Fail[struct{}](&Error{Kind: KindValidation, Message: err.Error()})
	}
	if id <= 0 {
		return Fail[struct{}](&Error{Kind: KindValidation, Message: fmt.Sprintf("invalid %s id %d", kind.Singular(), id)})
	}

	path := fmt.Sprintf("/api/admin/%s/%d", kind, id)
	if err := s.AuthedRequest(ctx, "admin_delete_"+string(kind), http.MethodDelete, path, nil); err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}
