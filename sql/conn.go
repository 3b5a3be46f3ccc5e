package sql

import (
	"context"
	"database/sql/driver"

	"github.com/kroma-labs/sentinel-profiler/profiler"
)

var (
	_ driver.Conn               = (*profiledConn)(nil)
	_ driver.ConnPrepareContext = (*profiledConn)(nil)
	_ driver.ConnBeginTx        = (*profiledConn)(nil)
	_ driver.ExecerContext      = (*profiledConn)(nil)
	_ driver.QueryerContext     = (*profiledConn)(nil)
	_ driver.Pinger             = (*profiledConn)(nil)
	_ driver.SessionResetter    = (*profiledConn)(nil)
	_ driver.Validator          = (*profiledConn)(nil)
	_ driver.NamedValueChecker  = (*profiledConn)(nil)
)

// profiledConn decorates a driver.Conn. Every operation is traced, metered
// and recorded in the profiler carried by the operation's context.
type profiledConn struct {
	conn driver.Conn
	cfg  *config
}

func newProfiledConn(conn driver.Conn, cfg *config) *profiledConn {
	return &profiledConn{
		conn: conn,
		cfg:  cfg,
	}
}

// Unwrap returns the driver's own connection.
func (c *profiledConn) Unwrap() driver.Conn {
	return c.conn
}

// Prepare implements driver.Conn.
func (c *profiledConn) Prepare(query string) (driver.Stmt, error) {
	stmt, err := c.conn.Prepare(query)
	if err != nil {
		return nil, err
	}
	return newProfiledStmt(stmt, c.cfg, query), nil
}

// Close implements driver.Conn.
func (c *profiledConn) Close() error {
	return c.conn.Close()
}

// Begin implements driver.Conn.
//
// Deprecated: database/sql calls BeginTx.
func (c *profiledConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

// PrepareContext implements driver.ConnPrepareContext.
func (c *profiledConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	var (
		stmt driver.Stmt
		err  error
	)
	if preparer, ok := c.conn.(driver.ConnPrepareContext); ok {
		stmt, err = preparer.PrepareContext(ctx, query)
	} else {
		stmt, err = c.conn.Prepare(query)
	}
	if err != nil {
		return nil, err
	}
	return newProfiledStmt(stmt, c.cfg, query), nil
}

// BeginTx implements driver.ConnBeginTx.
func (c *profiledConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	txCtx, obs := c.cfg.startCall(ctx, "BEGIN")

	var (
		tx  driver.Tx
		err error
	)
	if beginner, ok := c.conn.(driver.ConnBeginTx); ok {
		tx, err = beginner.BeginTx(txCtx, opts)
	} else {
		tx, err = c.conn.Begin() //nolint:staticcheck // drivers without ConnBeginTx
	}
	obs.End(err)

	if err != nil {
		return nil, err
	}
	return newProfiledTx(ctx, tx, c.cfg), nil
}

// ExecContext implements driver.ExecerContext. Drivers without ExecerContext
// get driver.ErrSkip, and database/sql falls back to a profiled statement.
func (c *profiledConn) ExecContext(
	ctx context.Context,
	query string,
	args []driver.NamedValue,
) (driver.Result, error) {
	execer, ok := c.conn.(driver.ExecerContext)
	if !ok {
		return nil, driver.ErrSkip
	}

	ctx, obs := c.cfg.startQuery(ctx, profiler.ExecuteNonQuery, query)
	result, err := execer.ExecContext(ctx, query, args)
	obs.End(err)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// QueryContext implements driver.QueryerContext.
func (c *profiledConn) QueryContext(
	ctx context.Context,
	query string,
	args []driver.NamedValue,
) (driver.Rows, error) {
	queryer, ok := c.conn.(driver.QueryerContext)
	if !ok {
		return nil, driver.ErrSkip
	}

	ctx, obs := c.cfg.startQuery(ctx, profiler.ExecuteReader, query)
	rows, err := queryer.QueryContext(ctx, query, args)
	rows = obs.EndReader(rows, err)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping implements driver.Pinger.
func (c *profiledConn) Ping(ctx context.Context) error {
	pinger, ok := c.conn.(driver.Pinger)
	if !ok {
		return nil
	}

	ctx, obs := c.cfg.startCall(ctx, "PING")
	err := pinger.Ping(ctx)
	obs.End(err)
	return err
}

// ResetSession implements driver.SessionResetter.
func (c *profiledConn) ResetSession(ctx context.Context) error {
	if resetter, ok := c.conn.(driver.SessionResetter); ok {
		return resetter.ResetSession(ctx)
	}
	return nil
}

// IsValid implements driver.Validator.
func (c *profiledConn) IsValid() bool {
	if validator, ok := c.conn.(driver.Validator); ok {
		return validator.IsValid()
	}
	return true
}

// CheckNamedValue implements driver.NamedValueChecker so drivers with their
// own argument types (pgx, for one) keep accepting them.
func (c *profiledConn) CheckNamedValue(nv *driver.NamedValue) error {
	if checker, ok := c.conn.(driver.NamedValueChecker); ok {
		return checker.CheckNamedValue(nv)
	}
	return driver.ErrSkip
}
