package sql

import (
	"context"
	"database/sql/driver"
)

// The interfaces below describe the driver values this package decorates.
// They exist so that mocks can be generated for them.

// DriverConn is a connection implementing the optional context interfaces.
type DriverConn interface {
	driver.Conn
	driver.ConnPrepareContext
	driver.ConnBeginTx
	driver.ExecerContext
	driver.QueryerContext
	driver.Pinger
}

// DriverTx is a transaction.
type DriverTx interface {
	Commit() error
	Rollback() error
}

// DriverStmt is a prepared statement implementing the context interfaces.
type DriverStmt interface {
	driver.Stmt
	driver.StmtExecContext
	driver.StmtQueryContext
}

// DriverResult is the result of an Exec.
type DriverResult interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}

// DriverRows is a result reader.
type DriverRows interface {
	Columns() []string
	Close() error
	Next(dest []driver.Value) error
}

// DriverConnector is a driver connector.
type DriverConnector interface {
	Connect(ctx context.Context) (driver.Conn, error)
	Driver() driver.Driver
}
