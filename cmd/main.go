package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-activity-alarm/internal/config"
	"github.com/KasumiMercury/primind-activity-alarm/internal/handler"
	"github.com/KasumiMercury/primind-activity-alarm/internal/health"
	"github.com/KasumiMercury/primind-activity-alarm/internal/infra/overduerecorder"
	"github.com/KasumiMercury/primind-activity-alarm/internal/infra/repository"
	"github.com/KasumiMercury/primind-activity-alarm/internal/infra/store"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/logging"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/metrics"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/middleware"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/dispatch"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/overdue"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/predictor"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/skip"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/threshold"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loadEnv()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	alarmMetrics, err := metrics.NewAlarmMetrics()
	if err != nil {
		slog.Error("failed to initialize alarm metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := overduerecorder.NewRecorder(ctx, overduerecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize overdue result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close overdue result recorder", slog.String("error", err.Error()))
		}
	}()

	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect database",
			slog.String("event", "database.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := store.Close(db); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	slog.Info("database connected",
		slog.String("host", cfg.Database.Host),
		slog.String("name", cfg.Database.Name),
	)

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	accountRepo := store.NewAccountRepository(db)
	activityRepo := store.NewActivityRepository(db)
	skipRepo := repository.NewSkipRepository(redisClient, cfg.Redis.KeyPrefix, cfg.Prediction.MaxIntervalHours)
	dispatchRepo := repository.NewDispatchRepository(redisClient, cfg.Redis.KeyPrefix, cfg.Alarm.DispatchTTL)

	overdueService := overdue.NewService(
		accountRepo,
		activityRepo,
		predictor.New(cfg.Prediction),
		threshold.NewPolicy(),
		skip.NewService(skipRepo),
		cfg.Prediction,
		cfg.Alarm,
		alarmMetrics,
		resultRecorder,
	)
	dispatchService := dispatch.NewService(
		accountRepo,
		overdueService,
		taskQueue,
		dispatchRepo,
		alarmMetrics,
		resultRecorder,
	)

	overdueHandler := handler.NewOverdueHandler(overdueService)
	predictionHandler := handler.NewPredictionHandler(overdueService)
	dispatchHandler := handler.NewDispatchHandler(dispatchService)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("activity-alarm"),
		TracerName:  "github.com/KasumiMercury/primind-activity-alarm/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, health.PingFunc(func(ctx context.Context) error {
		return store.Ping(ctx, db)
	}), Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	grpcHealthPath, grpcHealthHandler := healthChecker.GRPCHealth()
	r.Any(grpcHealthPath+"*method", gin.WrapH(grpcHealthHandler))

	r.GET("/api/activities/check-overdue", overdueHandler.HandleCheckOverdue)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/babies/:babyId/predictions", predictionHandler.HandleGetPredictions)
		v1.POST("/babies/:babyId/skips/:category", predictionHandler.HandleRecordSkip)
		v1.DELETE("/babies/:babyId/skips/:category", predictionHandler.HandleClearSkip)
		v1.POST("/alarms/dispatch", dispatchHandler.HandleDispatch)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("check_concurrency", cfg.Alarm.CheckConcurrency),
			slog.Bool("skip_suppression", cfg.Alarm.SkipSuppression),
			slog.Int("history_window", cfg.Prediction.HistoryWindow),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := resultRecorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush overdue result recorder", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
