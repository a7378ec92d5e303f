// MentorHive | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mentorhive/backend/internal/admin"
	"github.com/mentorhive/backend/internal/audit"
	"github.com/mentorhive/backend/internal/auth"
	"github.com/mentorhive/backend/internal/blog"
	"github.com/mentorhive/backend/internal/config"
	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/doubt"
	"github.com/mentorhive/backend/internal/health"
	"github.com/mentorhive/backend/internal/juniorspace"
	"github.com/mentorhive/backend/internal/mentor"
	"github.com/mentorhive/backend/internal/middleware"
	"github.com/mentorhive/backend/internal/moderation"
	"github.com/mentorhive/backend/internal/realtime"
	"github.com/mentorhive/backend/internal/server"
	"github.com/mentorhive/backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	var hub *realtime.Hub
	if cfg.Realtime.Enabled {
		hub, err = realtime.Init(logger)
		if err != nil {
			return err
		}
		logger.Info("realtime hub initialized")
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(jwtManager, userSvc, cfg.Moderation.EnforceBans)
	authHandler := auth.NewHandler(authSvc)

	mentorRepo := mentor.NewRepository(db.DB)
	mentorSvc := mentor.NewService(mentorRepo)
	mentorHandler := mentor.NewHandler(mentorSvc)

	doubtRepo := doubt.NewRepository(db.DB)
	var doubtBroadcaster doubt.Broadcaster
	if hub != nil {
		doubtBroadcaster = hub
	}
	doubtSvc := doubt.NewService(db.DB, doubtRepo, doubtBroadcaster)
	doubtHandler := doubt.NewHandler(doubtSvc)

	blogRepo := blog.NewRepository(db.DB)
	blogSvc := blog.NewService(blogRepo, userSvc)
	blogHandler := blog.NewHandler(blogSvc)

	juniorRepo := juniorspace.NewRepository(db.DB)
	var juniorBroadcaster juniorspace.Broadcaster
	if hub != nil {
		juniorBroadcaster = hub
	}
	juniorSvc := juniorspace.NewService(juniorRepo, juniorBroadcaster)
	juniorHandler := juniorspace.NewHandler(juniorSvc)

	auditRepo := audit.NewRepository(db.DB)

	moderationSvc := moderation.NewService(
		db.DB,
		moderation.Config{
			AdminSecretKey: cfg.Moderation.AdminSecretKey,
			EnforceBans:    cfg.Moderation.EnforceBans,
		},
		userRepo,
		mentorRepo,
		doubtRepo,
		juniorRepo,
		auditRepo,
	)
	moderationHandler := moderation.NewHandler(moderationSvc)

	healthHandler := health.NewHandler(db, redis)

	adminCfg := admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	}
	if hub != nil {
		adminCfg.Hub = hub
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)
	adminOnly := middleware.RequireAdmin

	if hub != nil {
		rtHandler := realtime.NewHandler(hub, cfg.Realtime, logger)
		router.Get("/ws", rtHandler.ServeWS)
	}

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)
		mentorHandler.RegisterRoutes(r, authenticator)
		doubtHandler.RegisterRoutes(r, authenticator)
		blogHandler.RegisterRoutes(r, authenticator, optionalAuth)
		juniorHandler.RegisterRoutes(r, authenticator)

		r.Route("/admin", func(r chi.Router) {
			moderationHandler.RegisterRoutes(r, authenticator)
			adminHandler.RegisterRoutes(r, authenticator, adminOnly)
		})
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
