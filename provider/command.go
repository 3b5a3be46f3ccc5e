package provider

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
)

// Command is a statement with positional parameters, bound to a driver
// connection when executed.
type Command interface {
	Text() string
	Parameters() []*Parameter
	Conn() driver.Conn
	SetConn(conn driver.Conn)

	// Clone returns an unbound copy with copied parameters.
	Clone() Command

	ExecContext(ctx context.Context) (driver.Result, error)
	QueryContext(ctx context.Context) (driver.Rows, error)
}

// TextCommand is the plain Command implementation.
type TextCommand struct {
	text   string
	params []*Parameter
	conn   driver.Conn
}

var _ Command = (*TextCommand)(nil)

// NewTextCommand returns an unbound command.
//
// Example:
//
//	cmd := provider.NewTextCommand("SELECT name FROM users WHERE id = ?",
//	    &provider.Parameter{Name: "p0", Value: int64(1), Kind: provider.KindInt64},
//	)
//	cmd.SetConn(conn)
//	rows, err := cmd.QueryContext(ctx)
func NewTextCommand(text string, params ...*Parameter) *TextCommand {
	return &TextCommand{text: text, params: params}
}

func (c *TextCommand) Text() string { return c.text }

func (c *TextCommand) Parameters() []*Parameter { return c.params }

func (c *TextCommand) Conn() driver.Conn { return c.conn }

func (c *TextCommand) SetConn(conn driver.Conn) { c.conn = conn }

// Clone implements Command.
func (c *TextCommand) Clone() Command {
	params := make([]*Parameter, len(c.params))
	for i, p := range c.params {
		if p == nil {
			continue
		}
		cp := *p
		params[i] = &cp
	}
	return &TextCommand{text: c.text, params: params}
}

// ExecContext implements Command.
func (c *TextCommand) ExecContext(ctx context.Context) (driver.Result, error) {
	if c.conn == nil {
		return nil, ErrNoConnection
	}
	args, err := NamedValues(c.conn, c.params)
	if err != nil {
		return nil, err
	}
	return ExecConn(ctx, c.conn, c.text, args)
}

// QueryContext implements Command.
func (c *TextCommand) QueryContext(ctx context.Context) (driver.Rows, error) {
	if c.conn == nil {
		return nil, ErrNoConnection
	}
	args, err := NamedValues(c.conn, c.params)
	if err != nil {
		return nil, err
	}
	return QueryConn(ctx, c.conn, c.text, args)
}

// CommandDefinition creates ready-to-bind commands.
type CommandDefinition interface {
	CreateCommand() (Command, error)
}

type commandDefinition struct {
	prototype Command
}

// NewCommandDefinition returns a definition whose commands are clones of
// prototype. Later changes to prototype do not affect it.
func NewCommandDefinition(prototype Command) (CommandDefinition, error) {
	if prototype == nil {
		return nil, ErrNilCommand
	}
	return &commandDefinition{prototype: prototype.Clone()}, nil
}

func (d *commandDefinition) CreateCommand() (Command, error) {
	return d.prototype.Clone(), nil
}

// NamedValues converts params to positional driver arguments. A connection
// implementing driver.NamedValueChecker gets the first say, as it would
// under database/sql; otherwise driver.DefaultParameterConverter applies.
func NamedValues(conn driver.Conn, params []*Parameter) ([]driver.NamedValue, error) {
	checker, _ := conn.(driver.NamedValueChecker)

	args := make([]driver.NamedValue, len(params))
	for i, p := range params {
		nv := driver.NamedValue{Ordinal: i + 1}
		if p != nil {
			nv.Value = p.Value
		}

		if checker != nil {
			err := checker.CheckNamedValue(&nv)
			if err == nil {
				args[i] = nv
				continue
			}
			if !errors.Is(err, driver.ErrSkip) {
				return nil, fmt.Errorf("parameter %d: %w", i+1, err)
			}
		}

		v, err := driver.DefaultParameterConverter.ConvertValue(nv.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		nv.Value = v
		args[i] = nv
	}
	return args, nil
}

// ExecConn executes query directly on a driver connection, preparing a
// statement when the connection does not execute directly.
func ExecConn(ctx context.Context, conn driver.Conn, query string, args []driver.NamedValue) (driver.Result, error) {
	if conn == nil {
		return nil, ErrNoConnection
	}
	if execer, ok := conn.(driver.ExecerContext); ok {
		result, err := execer.ExecContext(ctx, query, args)
		if !errors.Is(err, driver.ErrSkip) {
			return result, err
		}
	}

	stmt, err := prepare(ctx, conn, query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	if execer, ok := stmt.(driver.StmtExecContext); ok {
		return execer.ExecContext(ctx, args)
	}
	return stmt.Exec(values(args)) //nolint:staticcheck // statements without StmtExecContext
}

// QueryConn runs query directly on a driver connection. When a statement
// had to be prepared, closing the returned rows also closes it.
func QueryConn(ctx context.Context, conn driver.Conn, query string, args []driver.NamedValue) (driver.Rows, error) {
	if conn == nil {
		return nil, ErrNoConnection
	}
	if queryer, ok := conn.(driver.QueryerContext); ok {
		rows, err := queryer.QueryContext(ctx, query, args)
		if !errors.Is(err, driver.ErrSkip) {
			return rows, err
		}
	}

	stmt, err := prepare(ctx, conn, query)
	if err != nil {
		return nil, err
	}

	var rows driver.Rows
	if queryer, ok := stmt.(driver.StmtQueryContext); ok {
		rows, err = queryer.QueryContext(ctx, args)
	} else {
		rows, err = stmt.Query(values(args)) //nolint:staticcheck // statements without StmtQueryContext
	}
	if err != nil {
		_ = stmt.Close()
		return nil, err
	}
	return &stmtRows{Rows: rows, stmt: stmt}, nil
}

func prepare(ctx context.Context, conn driver.Conn, query string) (driver.Stmt, error) {
	if preparer, ok := conn.(driver.ConnPrepareContext); ok {
		return preparer.PrepareContext(ctx, query)
	}
	return conn.Prepare(query)
}

func values(args []driver.NamedValue) []driver.Value {
	vals := make([]driver.Value, len(args))
	for i, a := range args {
		vals[i] = a.Value
	}
	return vals
}

// stmtRows closes its statement together with the rows. It owns the
// statement, so it has no Unwrap: peeling it would leak the statement.
type stmtRows struct {
	driver.Rows
	stmt driver.Stmt
}

func (r *stmtRows) Close() error {
	return errors.Join(r.Rows.Close(), r.stmt.Close())
}
