package sqlx

import (
	"context"
	"errors"
	"fmt"

	sentinelsql "github.com/kroma-labs/sentinel-profiler/sql"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func init() {
	// modernc.org/sqlite registers as "sqlite".
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open opens a profiled database and wraps it with sqlx. opts configure
// the profiled driver.
//
// Example:
//
//	db, err := sentinelsqlx.Open("sqlite", ":memory:",
//	    sentinelsql.WithDBSystem("sqlite"),
//	)
func Open(driverName, dsn string, opts ...sentinelsql.Option) (*sqlx.DB, error) {
	db, err := sentinelsql.Open(driverName, dsn, opts...)
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(db, driverName), nil
}

// Connect is Open followed by a ping. The database is closed if the ping
// fails.
func Connect(ctx context.Context, driverName, dsn string, opts ...sentinelsql.Option) (*sqlx.DB, error) {
	db, err := Open(driverName, dsn, opts...)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping %s: %w", driverName, err), db.Close())
	}
	return db, nil
}

// MustConnect is like Connect but panics on error.
func MustConnect(ctx context.Context, driverName, dsn string, opts ...sentinelsql.Option) *sqlx.DB {
	db, err := Connect(ctx, driverName, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// RecordPoolMetrics reports the connection pool statistics of db. See
// sentinelsql.RecordPoolMetrics.
func RecordPoolMetrics(db *sqlx.DB, meter metric.Meter, attrs ...attribute.KeyValue) error {
	return sentinelsql.RecordPoolMetrics(db.DB, meter, attrs...)
}
