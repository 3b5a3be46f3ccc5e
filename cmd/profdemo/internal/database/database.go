// Package database opens the demo's profiled database, resolves the
// profiled driver services for its dialect and keeps the schema in place.
package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/config"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/telemetry"
	"github.com/kroma-labs/sentinel-profiler/provider"
	"github.com/kroma-labs/sentinel-profiler/provider/profiled"
	sentinelsql "github.com/kroma-labs/sentinel-profiler/sql"
	sentinelsqlx "github.com/kroma-labs/sentinel-profiler/sqlx"
	"github.com/rs/zerolog"

	// Drivers selectable through config.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	// Registers the "sqlite", "postgres" and "mysql" driver services.
	_ "github.com/kroma-labs/sentinel-profiler/provider/sqlprovider"
)

// Schema is the store the demo works on.
var Schema = &provider.StoreItems{Tables: []provider.TableSchema{
	{Name: "places", Columns: []provider.ColumnSchema{
		{Name: "id", Type: provider.TypeUsage{Kind: provider.KindGuid}, PrimaryKey: true},
		{Name: "name", Type: provider.TypeUsage{Kind: provider.KindString, MaxLength: 64}},
		{Name: "location", Type: provider.TypeUsage{Kind: provider.KindGeography}},
	}},
}}

// Options returns the profiled driver options for cfg.
func Options(cfg config.Config, tel *telemetry.Telemetry, logger zerolog.Logger) []sentinelsql.Option {
	opts := []sentinelsql.Option{
		sentinelsql.WithDBSystem(config.Dialects[cfg.Database.Driver].System),
		sentinelsql.WithDBName(cfg.Database.Name),
		sentinelsql.WithLogger(logger),
		sentinelsql.WithSlowQueryThreshold(cfg.Database.SlowQueryThreshold),
	}
	if tel != nil {
		opts = append(opts,
			sentinelsql.WithTracerProvider(tel.Tracer()),
			sentinelsql.WithMeterProvider(tel.Meter()),
		)
	}
	return opts
}

// Open connects to the configured database, retrying with exponential
// backoff for up to ConnectTimeout, and applies the pool settings.
func Open(ctx context.Context, cfg config.Database, opts []sentinelsql.Option, logger zerolog.Logger) (*sqlx.DB, error) {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 200 * time.Millisecond
	eb.MaxInterval = 5 * time.Second

	db, err := backoff.Retry(ctx,
		func() (*sqlx.DB, error) {
			return sentinelsqlx.Connect(ctx, cfg.Driver, cfg.DSN, opts...)
		},
		backoff.WithBackOff(eb),
		backoff.WithMaxElapsedTime(cfg.ConnectTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn().
				Err(err).
				Str("driver", cfg.Driver).
				Dur("retry_in", next).
				Msg("database not reachable, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("database: connect %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return db, nil
}

// Services returns the profiled driver services for the configured driver.
func Services(cfg config.Config, opts []sentinelsql.Option) (*profiled.Services, error) {
	return profiled.Instance(config.Dialects[cfg.Database.Driver].Provider, opts...)
}

// WithConn runs fn on a pooled driver connection. The connection is the
// profiled one; the driver services unwrap it themselves.
func WithConn(ctx context.Context, db *sqlx.DB, fn func(driver.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.Raw(func(dc any) error {
		return fn(dc.(driver.Conn))
	})
}

// EnsureSchema creates Schema unless every table already exists.
func EnsureSchema(
	ctx context.Context,
	db *sqlx.DB,
	svc provider.Services,
	timeout time.Duration,
	logger zerolog.Logger,
) error {
	var commandTimeout *time.Duration
	if timeout > 0 {
		commandTimeout = &timeout
	}

	return WithConn(ctx, db, func(conn driver.Conn) error {
		exists, err := svc.DatabaseExists(ctx, conn, commandTimeout, Schema)
		if err != nil {
			return fmt.Errorf("database: check schema: %w", err)
		}
		if exists {
			logger.Debug().Strs("tables", Schema.TableNames()).Msg("schema present")
			return nil
		}

		if err := svc.CreateDatabase(ctx, conn, commandTimeout, Schema); err != nil {
			return fmt.Errorf("database: create schema: %w", err)
		}
		logger.Info().Strs("tables", Schema.TableNames()).Msg("schema created")
		return nil
	})
}

// Ready checks that the database answers and the schema is in place.
func Ready(db *sqlx.DB, svc provider.Services) func(context.Context) error {
	return func(ctx context.Context) error {
		return WithConn(ctx, db, func(conn driver.Conn) error {
			exists, err := svc.DatabaseExists(ctx, conn, nil, Schema)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("schema missing: %v", Schema.TableNames())
			}
			return nil
		})
	}
}
