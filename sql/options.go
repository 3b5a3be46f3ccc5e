package sql

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// scope is the OpenTelemetry instrumentation scope of this package.
const scope = "github.com/kroma-labs/sentinel-profiler/sql"

// config holds the instrumentation settings shared by every decorated
// driver value created from the same Open, WrapDriver or NewInstrumenter call.
type config struct {
	// TracerProvider defaults to otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// MeterProvider defaults to otel.GetMeterProvider().
	MeterProvider metric.MeterProvider

	Tracer  trace.Tracer
	Meter   metric.Meter
	Metrics *metrics

	// DBSystem identifies the DBMS product, e.g. "postgresql", "mysql" or
	// "sqlite". Recorded as db.system.
	DBSystem string

	// DBName is the database being accessed. Recorded as db.name.
	DBName string

	// InstanceName tells apart connections to the same database, such as a
	// primary and its replicas. Recorded as db.instance.
	InstanceName string

	// QuerySanitizer rewrites statements before they reach spans, profiler
	// timings and logs. Nil records statements verbatim.
	QuerySanitizer func(query string) string

	// DisableQuery omits statements from spans, timings and logs. The
	// operation name is still recorded.
	DisableQuery bool

	// Logger receives slow operations and failures at debug level.
	// Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// SlowQueryThreshold logs operations that take at least this long.
	// Zero disables slow-query logging.
	SlowQueryThreshold time.Duration
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
		Logger:         zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	cfg.Tracer = cfg.TracerProvider.Tracer(scope)
	cfg.Meter = cfg.MeterProvider.Meter(scope)

	// A failed instrument leaves Metrics nil, which records nothing.
	cfg.Metrics, _ = newMetrics(cfg.Meter)

	return cfg
}

// Option configures the instrumentation.
type Option func(*config)

// WithTracerProvider sets the tracer provider used for spans.
//
// Example:
//
//	tp := sdktrace.NewTracerProvider(...)
//	db, _ := sentinelsql.Open("pgx", dsn, sentinelsql.WithTracerProvider(tp))
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *config) {
		cfg.TracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider used for the operation
// duration histogram.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *config) {
		cfg.MeterProvider = mp
	}
}

// WithDBSystem sets the db.system attribute.
//
// Common values: "postgresql", "mysql", "sqlite".
func WithDBSystem(system string) Option {
	return func(cfg *config) {
		cfg.DBSystem = system
	}
}

// WithDBName sets the db.name attribute.
func WithDBName(name string) Option {
	return func(cfg *config) {
		cfg.DBName = name
	}
}

// WithInstanceName sets the db.instance attribute.
//
// Use it to tell apart several connections to the same database:
//
//	writer, _ := sentinelsql.Open("pgx", primaryDSN,
//	    sentinelsql.WithDBSystem("postgresql"),
//	    sentinelsql.WithInstanceName("primary"),
//	)
//	reader, _ := sentinelsql.Open("pgx", replicaDSN,
//	    sentinelsql.WithDBSystem("postgresql"),
//	    sentinelsql.WithInstanceName("replica"),
//	)
func WithInstanceName(name string) Option {
	return func(cfg *config) {
		cfg.InstanceName = name
	}
}

// WithQuerySanitizer sets the function that masks statements before they
// are recorded. DefaultQuerySanitizer replaces literals with "?".
//
// Example:
//
//	db, _ := sentinelsql.Open("pgx", dsn,
//	    sentinelsql.WithQuerySanitizer(sentinelsql.DefaultQuerySanitizer),
//	)
//	// "SELECT * FROM users WHERE id = 123" is recorded as
//	// "SELECT * FROM users WHERE id = ?"
func WithQuerySanitizer(fn func(string) string) Option {
	return func(cfg *config) {
		cfg.QuerySanitizer = fn
	}
}

// WithDisableQuery stops statements from being recorded anywhere. Spans
// keep db.operation, and profiler timings show the operation name only.
func WithDisableQuery() Option {
	return func(cfg *config) {
		cfg.DisableQuery = true
	}
}

// WithLogger sets the logger for slow operations and failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger
	}
}

// WithSlowQueryThreshold logs a warning for every operation that takes at
// least d.
//
// Example:
//
//	db, _ := sentinelsql.Open("sqlite", ":memory:",
//	    sentinelsql.WithLogger(log.Logger),
//	    sentinelsql.WithSlowQueryThreshold(200*time.Millisecond),
//	)
func WithSlowQueryThreshold(d time.Duration) Option {
	return func(cfg *config) {
		cfg.SlowQueryThreshold = d
	}
}
