package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/model"
	"github.com/jala-youth/jala-web/internal/store"
)

const password = "s3cret"

// remoteAPI is an in-memory admin API holding a few bookings.
type remoteAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	bookings []model.Booking
	hits     map[string]int
	failures map[string]int // path -> status to answer with
	gate     chan struct{}  // when set, list calls block until it is closed
}

func newRemoteAPI(t *testing.T) *remoteAPI {
	api := &remoteAPI{
		bookings: []model.Booking{
			{ID: 1, ParentName: "Amina", ParentPhone: "0712345678", StudentName: "Zawadi", StudentGrade: "Form 2", CreatedAt: "2025-03-01T09:00:00Z"},
			{ID: 2, ParentName: "Juma", ParentPhone: "0723456789", StudentName: "Baraka", StudentGrade: "Form 4", CreatedAt: "2025-03-02T09:00:00Z"},
		},
		hits:     map[string]int{},
		failures: map[string]int{},
	}
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.server.Close)
	return api
}

func (a *remoteAPI) serve(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	key := r.Method + " " + r.URL.Path
	a.hits[key]++
	status, failing := a.failures[r.URL.Path]
	gate := a.gate
	a.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+password {
		reply(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}
	if failing {
		reply(w, status, map[string]string{"message": "boom"})
		return
	}
	if gate != nil && r.Method == http.MethodGet && r.URL.Path != "/api/admin/stats" {
		<-gate
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/stats":
		reply(w, http.StatusOK, map[string]interface{}{"stats": model.AdminStats{TotalBookings: len(a.bookings), AverageRating: 4}})
	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/bookings":
		reply(w, http.StatusOK, map[string]interface{}{"data": a.bookings})
	case r.Method == http.MethodGet && (r.URL.Path == "/api/admin/subscriptions" || r.URL.Path == "/api/admin/feedback"):
		reply(w, http.StatusOK, map[string]interface{}{"data": []struct{}{}})
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/admin/bookings/"):
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/admin/bookings/"))
		for i, b := range a.bookings {
			if b.ID == id {
				a.bookings = append(a.bookings[:i], a.bookings[i+1:]...)
				reply(w, http.StatusOK, map[string]bool{"success": true})
				return
			}
		}
		reply(w, http.StatusNotFound, map[string]string{"message": "Booking not found"})
	default:
		reply(w, http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func (a *remoteAPI) count(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[method+" "+path]
}

func (a *remoteAPI) fail(path string, status int) {
	a.mu.Lock()
	a.failures[path] = status
	a.mu.Unlock()
}

func reply(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newDashboard(t *testing.T, api *remoteAPI, tokens store.TokenStore) *Dashboard {
	t.Helper()
	if tokens == nil {
		tokens = store.NewMemoryStore()
	}
	sess := gateway.NewSession(gateway.NewClient(api.server.URL), tokens)
	return New(sess, zerolog.Nop())
}

func loggedIn(t *testing.T, api *remoteAPI) *Dashboard {
	t.Helper()
	d := newDashboard(t, api, nil)
	require.NoError(t, d.Dispatch(context.Background(), Login{Password: password}))
	return d
}
