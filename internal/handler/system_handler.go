package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/response"
)

const healthPingTimeout = 2 * time.Second

// SystemHandler reports liveness and process statistics.
type SystemHandler struct {
	rdb       redis.Cmdable // nil when sessions are kept in memory
	registry  *dashboard.Registry
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(rdb redis.Cmdable, registry *dashboard.Registry, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		rdb:       rdb,
		registry:  registry,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type healthStatus struct {
	Status        string `json:"status"`
	Uptime        string `json:"uptime"`
	SessionStore  string `json:"session_store"`
	AdminSessions int    `json:"admin_sessions"`
	Goroutines    int    `json:"goroutines"`
	GoVersion     string `json:"go_version"`
}

// Health godoc
// GET /health
// Answers 503 when the session store is unreachable.
func (h *SystemHandler) Health(c *gin.Context) {
	status := healthStatus{
		Status:        "ok",
		Uptime:        formatDuration(time.Since(h.startTime)),
		SessionStore:  "memory",
		AdminSessions: h.registry.Len(),
		Goroutines:    runtime.NumGoroutine(),
		GoVersion:     runtime.Version(),
	}

	if h.rdb != nil {
		status.SessionStore = "redis"
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.log.Warn().Err(err).Msg("Redis ping failed")
			status.Status = "degraded"
			response.Success(c, http.StatusServiceUnavailable, status)
			return
		}
	}

	response.Success(c, http.StatusOK, status)
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
