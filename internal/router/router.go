package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jala-youth/jala-web/internal/config"
	"github.com/jala-youth/jala-web/internal/handler"
	"github.com/jala-youth/jala-web/internal/metrics"
	"github.com/jala-youth/jala-web/internal/middleware"
	"github.com/jala-youth/jala-web/internal/response"
	"github.com/jala-youth/jala-web/internal/service"
)

// siteMaxAge is how long browsers may cache the static site content.
const siteMaxAge = 300

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Form    *handler.FormHandler
	Admin   *handler.AdminHandler
	Content *handler.ContentHandler
	System  *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds the background work of the rate limiter.
func SetupRouter(
	ctx context.Context,
	authService *service.AuthService,
	handlers *Handlers,
	m *metrics.Metrics,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	// The admin cookie needs credentials, which rule out the wildcard.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Metrics(m))

	router.GET("/health", handlers.System.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Forms and admin login share a per-IP budget.
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, time.Minute)

	// ─── 0. Public Group (No Auth) ─────────────────────────────────────
	publicAPI := router.Group("/api/v1/public")
	publicAPI.Use(middleware.CacheControl(siteMaxAge))
	{
		publicAPI.GET("/site", handlers.Content.Site)
	}

	// ─── 1. Forms Group (Public, Rate Limited) ─────────────────────────
	forms := router.Group("/api/v1/forms")
	forms.Use(limiter.Middleware())
	{
		forms.POST("/bookings", handlers.Form.SubmitBooking)
		forms.POST("/subscribe", handlers.Form.Subscribe)
		forms.POST("/feedback", handlers.Form.SubmitFeedback)
	}

	// ─── 2. Admin Login (Public, Rate Limited) ─────────────────────────
	adminAuth := router.Group("/api/v1/admin")
	adminAuth.Use(middleware.NoStore(), limiter.Middleware())
	{
		adminAuth.POST("/login", handlers.Admin.Login)
	}

	// ─── 3. Admin Group (Session Cookie) ───────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.NoStore(), middleware.RequireAdminSession(authService))
	{
		adminAPI.POST("/logout", handlers.Admin.Logout)
		adminAPI.GET("/dashboard", handlers.Admin.Dashboard)
		adminAPI.GET("/:kind", handlers.Admin.SelectTab)
		adminAPI.POST("/:kind/refresh", handlers.Admin.Refresh)
		adminAPI.POST("/:kind/:id/delete-request", handlers.Admin.RequestDelete)
		adminAPI.DELETE("/:kind/:id", handlers.Admin.Delete)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
