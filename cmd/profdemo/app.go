package main

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/config"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/database"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/places"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/telemetry"
	"github.com/kroma-labs/sentinel-profiler/internal/httpserver"
	"github.com/kroma-labs/sentinel-profiler/profiler"
	"github.com/kroma-labs/sentinel-profiler/provider/profiled"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"golang.org/x/time/rate"
)

// app assembles the service. Logs go to out.
func app(cfg config.Config, out io.Writer) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			func() (zerolog.Logger, error) { return telemetry.NewLogger(cfg, out) },
			newTelemetry,
			newHealth,
			newProfileStorage,
			newRouter,
			newServer,
		),
		fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger {
			return &fxLogger{logger: logger.With().Str("component", "fx").Logger()}
		}),
		database.Module,
		places.Module,
		fx.Invoke(
			registerReadiness,
			func(*httpserver.Server) {},
		),
	)
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config) (*telemetry.Telemetry, error) {
	tel, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: tel.Shutdown})
	return tel, nil
}

func newHealth(cfg config.Config) *httpserver.HealthHandler {
	return httpserver.NewHealthHandler(cfg.Service.Name, cfg.Service.Version)
}

func registerReadiness(health *httpserver.HealthHandler, db *sqlx.DB, svc *profiled.Services) {
	health.AddReadinessCheck("database", database.Ready(db, svc))
}

// newProfileStorage returns the configured profile storage. Redis storage
// adds its own readiness check.
func newProfileStorage(
	lc fx.Lifecycle,
	cfg config.Config,
	health *httpserver.HealthHandler,
) profiler.Storage {
	if cfg.Profiler.Storage != "redis" {
		return profiler.NewMemoryStorage(cfg.Profiler.Capacity)
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Profiler.RedisAddr})
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return client.Close() },
	})
	health.AddReadinessCheck("profiler_redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})

	opts := []profiler.RedisOption{
		profiler.WithRedisTTL(cfg.Profiler.RedisTTL),
		profiler.WithRedisMaxEntries(int64(cfg.Profiler.Capacity)),
	}
	if cfg.Profiler.SharedBreaker {
		opts = append(opts, profiler.WithRedisSharedBreaker(profiler.NewBreakerStore(client)))
	}
	return profiler.NewRedisStorage(client, opts...)
}

// newRouter serves the health checks, metrics and profiler results unprofiled and
// profiles the places API.
func newRouter(
	cfg config.Config,
	logger zerolog.Logger,
	tel *telemetry.Telemetry,
	storage profiler.Storage,
	health *httpserver.HealthHandler,
	handler *places.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		httpserver.Recovery(logger),
		httpserver.RequestID(),
		httpserver.Logger(httpserver.LoggerConfig{Logger: logger, SkipPaths: cfg.Profiler.SkipPaths}),
	)

	r.Get("/livez", health.LiveHandler())
	r.Get("/readyz", health.ReadyHandler())
	r.Handle("/metrics", tel.MetricsHandler())
	r.Mount("/profiler", profiler.Handler(storage, profiler.HandlerConfig{Logger: logger}))

	r.Group(func(r chi.Router) {
		r.Use(profiler.Middleware(profiler.MiddlewareConfig{
			Storage:    storage,
			Logger:     logger,
			SkipPaths:  cfg.Profiler.SkipPaths,
			SampleRate: rate.Limit(cfg.Profiler.SampleRate),
			UserFunc: func(r *http.Request) string {
				return httpserver.RequestIDFromContext(r.Context())
			},
		}))
		handler.Routes(r)
	})
	return r
}

func newServer(lc fx.Lifecycle, cfg config.Config, router http.Handler, logger zerolog.Logger) *httpserver.Server {
	srv := httpserver.New(cfg.HTTP, router, logger.With().Str("component", "http").Logger())
	lc.Append(fx.Hook{
		OnStart: srv.Start,
		OnStop:  srv.Stop,
	})
	return srv
}
