package sql

import (
	"context"
	"database/sql/driver"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/require"
)

// testDriver returns a fixed connection.
type testDriver struct {
	conn    driver.Conn
	openErr error
}

func (d *testDriver) Open(_ string) (driver.Conn, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.conn, nil
}

// testContextDriver also implements driver.DriverContext.
type testContextDriver struct {
	testDriver
	connector driver.Connector
}

func (d *testContextDriver) OpenConnector(_ string) (driver.Connector, error) {
	return d.connector, nil
}

// closingConnector records whether it was closed.
type closingConnector struct {
	conn   driver.Conn
	closed bool
}

func (c *closingConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c *closingConnector) Driver() driver.Driver                         { return nil }
func (c *closingConnector) Close() error {
	c.closed = true
	return nil
}

// plainConn implements only driver.Conn.
type plainConn struct{}

func (plainConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (plainConn) Close() error                        { return nil }
func (plainConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

// telemetry captures spans and metrics produced with its options.
type telemetry struct {
	spans  *tracetest.InMemoryExporter
	reader *sdkmetric.ManualReader
	tp     *sdktrace.TracerProvider
	mp     *sdkmetric.MeterProvider
}

func newTelemetry(t *testing.T) *telemetry {
	t.Helper()

	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})
	return &telemetry{spans: spans, reader: reader, tp: tp, mp: mp}
}

func (tel *telemetry) options(opts ...Option) []Option {
	return append([]Option{WithTracerProvider(tel.tp), WithMeterProvider(tel.mp)}, opts...)
}

func (tel *telemetry) config(opts ...Option) *config {
	return newConfig(tel.options(opts...)...)
}

func (tel *telemetry) spanNames() []string {
	var names []string
	for _, s := range tel.spans.GetSpans() {
		names = append(names, s.Name)
	}
	return names
}

// durationPoints returns the number of recorded operations per status.
func (tel *telemetry) durationPoints(t *testing.T) map[string]uint64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, tel.reader.Collect(context.Background(), &rm))

	got := map[string]uint64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "db.client.operation.duration" {
				continue
			}
			hist, ok := m.Data.(metricdata.Histogram[float64])
			require.True(t, ok)
			for _, dp := range hist.DataPoints {
				status, _ := dp.Attributes.Value(attribute.Key("status"))
				got[status.AsString()] += dp.Count
			}
		}
	}
	return got
}
