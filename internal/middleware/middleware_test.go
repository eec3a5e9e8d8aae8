package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jala-youth/jala-web/internal/config"
	"github.com/jala-youth/jala-web/internal/metrics"
	"github.com/jala-youth/jala-web/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 2, time.Minute)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	r := gin.New()
	r.Use(rl.Middleware())
	r.POST("/form", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func() int {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/form", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, hit())
	assert.Equal(t, http.StatusNoContent, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())

	clock = clock.Add(time.Minute)
	assert.Equal(t, http.StatusNoContent, hit())
}

func TestRequireAdminSession(t *testing.T) {
	auth := service.NewAuthService(&config.Config{SessionSecret: "s", SessionTTL: time.Hour})
	token, claims, err := auth.IssueSession()
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", RequireAdminSession(auth), func(c *gin.Context) {
		c.String(http.StatusOK, GetClaims(c).SessionID())
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_REQUIRED")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookie, Value: token})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, claims.SessionID(), rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/v1/admin/:kind", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `path="/api/v1/admin/:kind"`)
}

func TestCacheHeaders(t *testing.T) {
	r := gin.New()
	r.GET("/site", CacheControl(300), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admin", NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site", nil))
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
