package sql

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/kroma-labs/sentinel-profiler/profiler"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Instrumenter observes database operations that do not pass through a
// driver opened with Open or WrapDriver, such as commands executed directly
// on a driver.Conn.
//
// Example:
//
//	in := sentinelsql.NewInstrumenter(sentinelsql.WithDBSystem("sqlite"))
//	ctx, obs := in.Start(ctx, profiler.ExecuteNonQuery, query)
//	res, err := execer.ExecContext(ctx, query, args)
//	obs.End(err)
type Instrumenter struct {
	cfg *config
}

// NewInstrumenter returns an Instrumenter configured with opts.
func NewInstrumenter(opts ...Option) *Instrumenter {
	return &Instrumenter{cfg: newConfig(opts...)}
}

// Start begins observing query. The returned context carries the span and
// must be passed to the operation.
func (in *Instrumenter) Start(
	ctx context.Context,
	executeType profiler.ExecuteType,
	query string,
) (context.Context, *Observation) {
	return in.cfg.startQuery(ctx, executeType, query)
}

// Logger returns the logger the Instrumenter was configured with.
func (in *Instrumenter) Logger() zerolog.Logger {
	return in.cfg.Logger
}

// Observation is one in-flight database operation. It must be finished with
// exactly one call to End or EndReader.
type Observation struct {
	cfg       *config
	ctx       context.Context
	span      trace.Span
	timing    *profiler.CustomTiming
	operation string
	statement string
	start     time.Time
}

// startQuery observes a statement.
func (cfg *config) startQuery(
	ctx context.Context,
	executeType profiler.ExecuteType,
	query string,
) (context.Context, *Observation) {
	operation := extractOperation(query)
	statement, ok := cfg.statement(query)
	command := statement
	if !ok {
		command = operation
	}
	return cfg.start(ctx, spanName(query), operation, statement, executeType, command,
		cfg.queryAttributes(query))
}

// startCall observes a statement-less call such as BEGIN or PING.
func (cfg *config) startCall(ctx context.Context, name string) (context.Context, *Observation) {
	return cfg.start(ctx, name, name, "", profiler.ExecuteNone, name, cfg.baseAttributes())
}

func (cfg *config) start(
	ctx context.Context,
	name, operation, statement string,
	executeType profiler.ExecuteType,
	command string,
	attrs []attribute.KeyValue,
) (context.Context, *Observation) {
	ctx, span := cfg.Tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	return ctx, &Observation{
		cfg:       cfg,
		ctx:       ctx,
		span:      span,
		timing:    profiler.Current(ctx).CustomTiming(profiler.CategorySQL, command, executeType),
		operation: operation,
		statement: statement,
		start:     time.Now(),
	}
}

// End finishes the observation. driver.ErrSkip means the driver declined the
// call and database/sql will retry it another way, so nothing is recorded.
func (o *Observation) End(err error) {
	if o == nil {
		return
	}
	if errors.Is(err, driver.ErrSkip) {
		o.timing.Discard()
		o.span.End()
		return
	}
	o.finish(err)
	o.timing.Stop(err)
}

// EndReader finishes the observation of a query. On success the returned
// rows are decorated so that the profiler timing covers reading them; it
// ends when the rows are closed.
func (o *Observation) EndReader(rows driver.Rows, err error) driver.Rows {
	if o == nil {
		return rows
	}
	if err != nil || rows == nil {
		o.End(err)
		return rows
	}
	o.timing.FirstFetchCompleted()
	o.finish(nil)
	return newProfiledRows(rows, o.timing)
}

func (o *Observation) finish(err error) {
	elapsed := time.Since(o.start)
	o.cfg.Metrics.recordQueryDuration(o.ctx, elapsed, o.operation, o.cfg.baseAttributes(), err)

	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}
	o.span.End()

	o.cfg.log(o.operation, o.statement, elapsed, err)
}

// statement returns the query as it may be recorded, and false when
// recording statements is disabled.
func (cfg *config) statement(query string) (string, bool) {
	if cfg.DisableQuery || query == "" {
		return "", false
	}
	if cfg.QuerySanitizer != nil {
		return cfg.QuerySanitizer(query), true
	}
	return query, true
}

func (cfg *config) log(operation, statement string, elapsed time.Duration, err error) {
	slow := cfg.SlowQueryThreshold > 0 && elapsed >= cfg.SlowQueryThreshold
	switch {
	case slow:
		event := cfg.Logger.Warn().
			Str("db.operation", operation).
			Dur("duration", elapsed)
		if statement != "" {
			event = event.Str("db.statement", statement)
		}
		event.Err(err).Msg("slow database operation")
	case err != nil:
		cfg.Logger.Debug().
			Err(err).
			Str("db.operation", operation).
			Dur("duration", elapsed).
			Msg("database operation failed")
	}
}
