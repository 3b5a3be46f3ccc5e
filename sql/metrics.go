package sql

import (
	"context"
	"database/sql"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// metrics holds the per-operation instruments.
type metrics struct {
	queryDuration metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	queryDuration, err := meter.Float64Histogram(
		"db.client.operation.duration",
		metric.WithDescription("Duration of database client operations"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.075, 0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}
	return &metrics{queryDuration: queryDuration}, nil
}

// recordQueryDuration records one operation with its db.operation and a
// status of "ok" or "error".
func (m *metrics) recordQueryDuration(
	ctx context.Context,
	duration time.Duration,
	operation string,
	attrs []attribute.KeyValue,
	err error,
) {
	if m == nil || m.queryDuration == nil {
		return
	}

	all := make([]attribute.KeyValue, 0, len(attrs)+2)
	all = append(all, attrs...)
	if operation != "" {
		all = append(all, attribute.String("db.operation", operation))
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	all = append(all, attribute.String("status", status))

	m.queryDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(all...))
}

// poolGauge is one connection pool statistic.
type poolGauge struct {
	name, description string
	value             func(sql.DBStats) int64
}

var poolGauges = []poolGauge{
	{"db.client.connections.open", "Number of open connections in the pool",
		func(s sql.DBStats) int64 { return int64(s.OpenConnections) }},
	{"db.client.connections.idle", "Number of idle connections in the pool",
		func(s sql.DBStats) int64 { return int64(s.Idle) }},
	{"db.client.connections.max", "Maximum number of open connections allowed",
		func(s sql.DBStats) int64 { return int64(s.MaxOpenConnections) }},
	{"db.client.connections.used", "Number of connections currently in use",
		func(s sql.DBStats) int64 { return int64(s.InUse) }},
}

// registerPoolMetrics observes db.Stats() on every collection. Pool
// statistics only exist on *sql.DB, which the driver never sees, so this
// is separate from the per-operation instruments.
func registerPoolMetrics(meter metric.Meter, db *sql.DB, attrs []attribute.KeyValue) error {
	gauges := make([]metric.Int64ObservableGauge, len(poolGauges))
	instruments := make([]metric.Observable, 0, len(poolGauges)+2)
	for i, g := range poolGauges {
		gauge, err := meter.Int64ObservableGauge(g.name,
			metric.WithDescription(g.description),
			metric.WithUnit("{connection}"),
		)
		if err != nil {
			return err
		}
		gauges[i] = gauge
		instruments = append(instruments, gauge)
	}

	waitCount, err := meter.Int64ObservableCounter(
		"db.client.connections.wait_count",
		metric.WithDescription("Total number of waits for a connection"),
		metric.WithUnit("{wait}"),
	)
	if err != nil {
		return err
	}
	waitDuration, err := meter.Float64ObservableCounter(
		"db.client.connections.wait_duration",
		metric.WithDescription("Total time spent waiting for connections"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}
	instruments = append(instruments, waitCount, waitDuration)

	opt := metric.WithAttributes(attrs...)
	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := db.Stats()
		for i, g := range poolGauges {
			o.ObserveInt64(gauges[i], g.value(stats), opt)
		}
		o.ObserveInt64(waitCount, stats.WaitCount, opt)
		o.ObserveFloat64(waitDuration, stats.WaitDuration.Seconds(), opt)
		return nil
	}, instruments...)
	return err
}

// RecordPoolMetrics reports the connection pool statistics of db.
//
// When db was opened with Open, its db.system, db.name and db.instance
// attributes are added automatically; attrs are appended to them.
//
// Example:
//
//	db, _ := sentinelsql.Open("pgx", dsn, sentinelsql.WithDBSystem("postgresql"))
//	err := sentinelsql.RecordPoolMetrics(db, otel.GetMeterProvider().Meter("myapp"))
func RecordPoolMetrics(db *sql.DB, meter metric.Meter, attrs ...attribute.KeyValue) error {
	if drv, ok := db.Driver().(*profiledDriver); ok && drv.cfg != nil {
		attrs = append(drv.cfg.baseAttributes(), attrs...)
	}
	return registerPoolMetrics(meter, db, attrs)
}
