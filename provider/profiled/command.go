package profiled

import (
	"context"
	"database/sql/driver"

	"github.com/kroma-labs/sentinel-profiler/profiler"
	"github.com/kroma-labs/sentinel-profiler/provider"
	sentinelsql "github.com/kroma-labs/sentinel-profiler/sql"
)

// ProfiledCommand decorates a command so that executing it is traced,
// metered and recorded in the profiler of the execution context.
type ProfiledCommand struct {
	inner provider.Command
	in    *sentinelsql.Instrumenter
}

var _ provider.Command = (*ProfiledCommand)(nil)

// NewCommand decorates cmd. A command that is already decorated is
// returned as is.
func NewCommand(cmd provider.Command, in *sentinelsql.Instrumenter) *ProfiledCommand {
	if pc, ok := cmd.(*ProfiledCommand); ok {
		return pc
	}
	if in == nil {
		in = sentinelsql.NewInstrumenter()
	}
	return &ProfiledCommand{inner: cmd, in: in}
}

// Unwrap returns the decorated command.
func (c *ProfiledCommand) Unwrap() provider.Command {
	return c.inner
}

func (c *ProfiledCommand) Text() string { return c.inner.Text() }

func (c *ProfiledCommand) Parameters() []*provider.Parameter { return c.inner.Parameters() }

func (c *ProfiledCommand) Conn() driver.Conn { return c.inner.Conn() }

// SetConn binds the real connection underneath conn's decorations.
func (c *ProfiledCommand) SetConn(conn driver.Conn) {
	c.inner.SetConn(sentinelsql.RealConn(conn))
}

// Clone keeps the decoration.
func (c *ProfiledCommand) Clone() provider.Command {
	return &ProfiledCommand{inner: c.inner.Clone(), in: c.in}
}

func (c *ProfiledCommand) ExecContext(ctx context.Context) (driver.Result, error) {
	ctx, obs := c.in.Start(ctx, profiler.ExecuteNonQuery, c.inner.Text())
	res, err := c.inner.ExecContext(ctx)
	obs.End(err)
	return res, err
}

// QueryContext returns rows whose profiler timing ends when they are
// closed.
func (c *ProfiledCommand) QueryContext(ctx context.Context) (driver.Rows, error) {
	ctx, obs := c.in.Start(ctx, profiler.ExecuteReader, c.inner.Text())
	rows, err := c.inner.QueryContext(ctx)
	return obs.EndReader(rows, err), err
}
