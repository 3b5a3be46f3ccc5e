package sql

import (
	"context"
	"database/sql/driver"

	"github.com/kroma-labs/sentinel-profiler/profiler"
)

var (
	_ driver.Stmt              = (*profiledStmt)(nil)
	_ driver.StmtExecContext   = (*profiledStmt)(nil)
	_ driver.StmtQueryContext  = (*profiledStmt)(nil)
	_ driver.NamedValueChecker = (*profiledStmt)(nil)
)

// profiledStmt decorates a prepared statement.
type profiledStmt struct {
	stmt  driver.Stmt
	cfg   *config
	query string
}

func newProfiledStmt(stmt driver.Stmt, cfg *config, query string) *profiledStmt {
	return &profiledStmt{
		stmt:  stmt,
		cfg:   cfg,
		query: query,
	}
}

// Unwrap returns the driver's own statement.
func (s *profiledStmt) Unwrap() driver.Stmt {
	return s.stmt
}

// Close implements driver.Stmt.
func (s *profiledStmt) Close() error {
	return s.stmt.Close()
}

// NumInput implements driver.Stmt.
func (s *profiledStmt) NumInput() int {
	return s.stmt.NumInput()
}

// Exec implements driver.Stmt.
//
// Deprecated: database/sql calls ExecContext.
func (s *profiledStmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.ExecContext(context.Background(), valueToNamedValue(args))
}

// Query implements driver.Stmt.
//
// Deprecated: database/sql calls QueryContext.
func (s *profiledStmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.QueryContext(context.Background(), valueToNamedValue(args))
}

// ExecContext implements driver.StmtExecContext.
func (s *profiledStmt) ExecContext(
	ctx context.Context,
	args []driver.NamedValue,
) (driver.Result, error) {
	ctx, obs := s.cfg.startQuery(ctx, profiler.ExecuteNonQuery, s.query)

	var (
		result driver.Result
		err    error
	)
	if execer, ok := s.stmt.(driver.StmtExecContext); ok {
		result, err = execer.ExecContext(ctx, args)
	} else {
		result, err = s.stmt.Exec(namedValueToValue(args)) //nolint:staticcheck // drivers without StmtExecContext
	}
	obs.End(err)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// QueryContext implements driver.StmtQueryContext.
func (s *profiledStmt) QueryContext(
	ctx context.Context,
	args []driver.NamedValue,
) (driver.Rows, error) {
	ctx, obs := s.cfg.startQuery(ctx, profiler.ExecuteReader, s.query)

	var (
		rows driver.Rows
		err  error
	)
	if queryer, ok := s.stmt.(driver.StmtQueryContext); ok {
		rows, err = queryer.QueryContext(ctx, args)
	} else {
		rows, err = s.stmt.Query(namedValueToValue(args)) //nolint:staticcheck // drivers without StmtQueryContext
	}
	rows = obs.EndReader(rows, err)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CheckNamedValue implements driver.NamedValueChecker.
func (s *profiledStmt) CheckNamedValue(nv *driver.NamedValue) error {
	if checker, ok := s.stmt.(driver.NamedValueChecker); ok {
		return checker.CheckNamedValue(nv)
	}
	return driver.ErrSkip
}

func namedValueToValue(named []driver.NamedValue) []driver.Value {
	values := make([]driver.Value, len(named))
	for i, nv := range named {
		values[i] = nv.Value
	}
	return values
}

func valueToNamedValue(values []driver.Value) []driver.NamedValue {
	named := make([]driver.NamedValue, len(values))
	for i, v := range values {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return named
}
