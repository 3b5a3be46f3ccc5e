// Package sql decorates database/sql drivers so that every database
// operation is traced with OpenTelemetry, metered, and recorded as a custom
// timing in the profiler carried by the operation's context.
//
// # Quick Start
//
//	import sentinelsql "github.com/kroma-labs/sentinel-profiler/sql"
//
//	db, err := sentinelsql.Open("sqlite", "file:app.db",
//	    sentinelsql.WithDBSystem("sqlite"),
//	    sentinelsql.WithDBName("app"),
//	)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	ctx, prof := profiler.Start(ctx, "list users")
//	rows, err := db.QueryContext(ctx, "SELECT id, name FROM users")
//	// ...
//	_ = prof.Stop(ctx) // prof now holds a custom timing for the query
//
// # Decorated values
//
// Connections, statements and rows created through this package wrap the
// driver's own values. Each exposes Unwrap, and RealConn, RealStmt and
// RealRows peel every layer. Code that hands connections to a driver which
// type-asserts on its own concrete types must unwrap first.
//
// # Direct instrumentation
//
// Commands executed on a driver.Conn outside of database/sql can be observed
// with an Instrumenter, which records the same span, metric and profiler
// timing as the decorated driver.
//
// # Observability
//
// Traces:
//   - one client span per operation, named after the SQL operation
//   - attributes db.system, db.name, db.instance, db.statement, db.operation
//
// Metrics:
//   - db.client.operation.duration, by db.operation and status
//   - db.client.connections.* via RecordPoolMetrics
//
// Logs:
//   - a zerolog warning for operations slower than WithSlowQueryThreshold
//
// Statements are recorded verbatim unless WithQuerySanitizer or
// WithDisableQuery is set.
package sql
