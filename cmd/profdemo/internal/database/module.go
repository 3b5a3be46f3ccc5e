package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/config"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/telemetry"
	"github.com/kroma-labs/sentinel-profiler/provider/profiled"
	sentinelsqlx "github.com/kroma-labs/sentinel-profiler/sqlx"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module provides the *sqlx.DB and the profiled driver services, and
// ensures the schema when the application starts.
var Module = fx.Module("database",
	fx.Provide(newDB, newServices),
	fx.Invoke(registerLifecycle),
)

func newDB(lc fx.Lifecycle, cfg config.Config, tel *telemetry.Telemetry, logger zerolog.Logger) (*sqlx.DB, error) {
	logger = logger.With().Str("component", "database").Logger()

	db, err := Open(context.Background(), cfg.Database, Options(cfg, tel, logger), logger)
	if err != nil {
		return nil, err
	}

	meter := tel.Meter().Meter("github.com/kroma-labs/sentinel-profiler/cmd/profdemo")
	if err := sentinelsqlx.RecordPoolMetrics(db, meter); err != nil {
		logger.Warn().Err(err).Msg("failed to register pool metrics")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func newServices(cfg config.Config, tel *telemetry.Telemetry, logger zerolog.Logger) (*profiled.Services, error) {
	return Services(cfg, Options(cfg, tel, logger.With().Str("component", "provider").Logger()))
}

func registerLifecycle(
	lc fx.Lifecycle,
	cfg config.Config,
	db *sqlx.DB,
	svc *profiled.Services,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := EnsureSchema(ctx, db, svc, cfg.Database.CommandTimeout, logger); err != nil {
				return fmt.Errorf("%s: %w", svc.Name(), err)
			}
			return nil
		},
	})
}
