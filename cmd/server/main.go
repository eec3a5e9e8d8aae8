package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jala-youth/jala-web/internal/config"
	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/database"
	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/handler"
	"github.com/jala-youth/jala-web/internal/logger"
	"github.com/jala-youth/jala-web/internal/metrics"
	"github.com/jala-youth/jala-web/internal/router"
	"github.com/jala-youth/jala-web/internal/service"
	"github.com/jala-youth/jala-web/internal/store"
	"github.com/jala-youth/jala-web/internal/validator"
	"github.com/jala-youth/jala-web/internal/worker"
)

const sweepInterval = 5 * time.Minute

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("api", cfg.APIBaseURL).
		Str("session_store", cfg.SessionStore).
		Msg("Starting JALA gateway")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Admin Token Storage ───────────────────────────────────────────
	var (
		rdb       *redis.Client
		redisPing redis.Cmdable
		newTokens func(sessionID string) store.TokenStore
	)
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		log.Warn().Msg("Admin sessions are kept in memory and lost on restart")
		newTokens = func(string) store.TokenStore { return store.NewMemoryStore() }
	default:
		var err error
		rdb, err = database.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		redisPing = rdb
		newTokens = func(sessionID string) store.TokenStore {
			return store.NewRedisStore(rdb, sessionID, cfg.SessionTTL)
		}
	}

	// ─── Initialize Services ──────────────────────────────────────────
	m := metrics.New()
	client := gateway.NewClient(cfg.APIBaseURL,
		gateway.WithTimeout(cfg.APITimeout),
		gateway.WithLogger(log),
		gateway.WithObserver(m),
	)
	authService := service.NewAuthService(cfg)
	registry := dashboard.NewRegistry(func(sessionID string) *dashboard.Dashboard {
		sess := gateway.NewSession(client, newTokens(sessionID))
		return dashboard.New(sess, log.With().Str("session", sessionID).Logger())
	})

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Form:    handler.NewFormHandler(client, log),
		Admin:   handler.NewAdminHandler(authService, registry, cfg.CookieSecure, log),
		Content: handler.NewContentHandler(),
		System:  handler.NewSystemHandler(redisPing, registry, log),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	sweeper := worker.NewSessionSweeper(registry, m, cfg.SessionTTL, sweepInterval, log)
	go sweeper.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(workerCtx, authService, handlers, m, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
