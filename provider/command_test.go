package provider_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/kroma-labs/sentinel-profiler/provider"
	"github.com/kroma-labs/sentinel-profiler/provider/sqlprovider"
	sentinelsql "github.com/kroma-labs/sentinel-profiler/sql"
	"github.com/kroma-labs/sentinel-profiler/sql/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// prepareOnlyConn supports nothing beyond driver.Conn.
type prepareOnlyConn struct {
	stmt driver.Stmt
}

func (c *prepareOnlyConn) Prepare(string) (driver.Stmt, error) { return c.stmt, nil }

func (c *prepareOnlyConn) Close() error { return nil }

func (c *prepareOnlyConn) Begin() (driver.Tx, error) { return nil, driver.ErrSkip }

// checkingConn converts strings to upper case and leaves the rest alone.
type checkingConn struct {
	prepareOnlyConn
}

func (c *checkingConn) CheckNamedValue(nv *driver.NamedValue) error {
	s, ok := nv.Value.(string)
	if !ok {
		return driver.ErrSkip
	}
	if s == "" {
		return errors.New("empty")
	}
	nv.Value = "UPPER:" + s
	return nil
}

func TestTextCommand_Clone(t *testing.T) {
	t.Run("given command with parameters, then clone is unbound and independent", func(t *testing.T) {
		conn := mocks.NewDriverConn(t)
		cmd := provider.NewTextCommand("SELECT 1 WHERE id = ?", &provider.Parameter{Name: "p0", Value: 1}, nil)
		cmd.SetConn(conn)

		clone := cmd.Clone()
		clone.Parameters()[0].Value = 2

		assert.Equal(t, cmd.Text(), clone.Text())
		assert.Nil(t, clone.Conn())
		assert.Equal(t, 1, cmd.Parameters()[0].Value)
		assert.Len(t, clone.Parameters(), 2)
		assert.Nil(t, clone.Parameters()[1])
	})
}

func TestTextCommand_ExecContext(t *testing.T) {
	const query = "UPDATE users SET name = ? WHERE id = ?"

	tests := []struct {
		name    string
		conn    func(*testing.T) driver.Conn
		wantErr error
	}{
		{
			name:    "given no connection, then returns ErrNoConnection",
			conn:    func(*testing.T) driver.Conn { return nil },
			wantErr: provider.ErrNoConnection,
		},
		{
			name: "given ExecerContext connection, then executes directly with converted args",
			conn: func(t *testing.T) driver.Conn {
				conn := mocks.NewDriverConn(t)
				conn.EXPECT().ExecContext(mock.Anything, query, []driver.NamedValue{
					{Ordinal: 1, Value: "bob"},
					{Ordinal: 2, Value: int64(7)},
				}).Return(driver.RowsAffected(1), nil)
				return conn
			},
		},
		{
			name: "given connection skipping direct exec, then prepares a statement and closes it",
			conn: func(t *testing.T) driver.Conn {
				conn := mocks.NewDriverConn(t)
				stmt := mocks.NewDriverStmt(t)
				conn.EXPECT().ExecContext(mock.Anything, query, mock.Anything).Return(nil, driver.ErrSkip)
				conn.EXPECT().PrepareContext(mock.Anything, query).Return(stmt, nil)
				stmt.EXPECT().ExecContext(mock.Anything, mock.Anything).Return(driver.RowsAffected(1), nil)
				stmt.EXPECT().Close().Return(nil)
				return conn
			},
		},
		{
			name: "given exec error, then returns it unchanged",
			conn: func(t *testing.T) driver.Conn {
				conn := mocks.NewDriverConn(t)
				conn.EXPECT().ExecContext(mock.Anything, query, mock.Anything).Return(nil, assert.AnError)
				return conn
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := provider.NewTextCommand(query,
				&provider.Parameter{Name: "p0", Value: "bob"},
				&provider.Parameter{Name: "p1", Value: 7},
			)
			if conn := tt.conn(t); conn != nil {
				cmd.SetConn(conn)
			}

			res, err := cmd.ExecContext(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			n, err := res.RowsAffected()
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestQueryConn(t *testing.T) {
	const query = "SELECT id FROM users"

	t.Run("given QueryerContext connection, then returns its rows", func(t *testing.T) {
		conn := mocks.NewDriverConn(t)
		rows := mocks.NewDriverRows(t)
		conn.EXPECT().QueryContext(mock.Anything, query, mock.Anything).Return(rows, nil)

		got, err := provider.QueryConn(context.Background(), conn, query, nil)

		require.NoError(t, err)
		assert.Same(t, rows, got)
	})

	t.Run("given prepare-only connection, then closing rows closes the statement", func(t *testing.T) {
		stmt := mocks.NewDriverStmt(t)
		rows := mocks.NewDriverRows(t)
		stmt.EXPECT().Query([]driver.Value{int64(1)}).Return(rows, nil)
		rows.EXPECT().Close().Return(nil)
		stmt.EXPECT().Close().Return(nil)

		// StmtQueryContext is satisfied by the mock, so route through a
		// statement that lacks it.
		got, err := provider.QueryConn(context.Background(), &prepareOnlyConn{stmt: legacyStmt{stmt}}, query,
			[]driver.NamedValue{{Ordinal: 1, Value: int64(1)}})
		require.NoError(t, err)

		require.NoError(t, got.Close())
	})

	t.Run("given prepared rows behind a spatial reader, then closing the reader closes the statement", func(t *testing.T) {
		stmt := mocks.NewDriverStmt(t)
		rows := mocks.NewDriverRows(t)
		stmt.EXPECT().QueryContext(mock.Anything, mock.Anything).Return(rows, nil)
		rows.EXPECT().Close().Return(nil)
		stmt.EXPECT().Close().Return(nil)

		got, err := provider.QueryConn(context.Background(), &prepareOnlyConn{stmt: stmt}, query, nil)
		require.NoError(t, err)
		assert.Same(t, got, sentinelsql.RealRows(got))

		reader, err := sqlprovider.SQLite.SpatialDataReader(sentinelsql.RealRows(got), "sqlite:3")
		require.NoError(t, err)

		require.NoError(t, reader.(driver.Rows).Close())
	})

	t.Run("given statement query error, then closes the statement", func(t *testing.T) {
		stmt := mocks.NewDriverStmt(t)
		stmt.EXPECT().QueryContext(mock.Anything, mock.Anything).Return(nil, assert.AnError)
		stmt.EXPECT().Close().Return(nil)

		got, err := provider.QueryConn(context.Background(), &prepareOnlyConn{stmt: stmt}, query, nil)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, got)
	})

	t.Run("given nil connection, then returns ErrNoConnection", func(t *testing.T) {
		_, err := provider.QueryConn(context.Background(), nil, query, nil)

		assert.ErrorIs(t, err, provider.ErrNoConnection)
	})
}

// legacyStmt hides the context methods of a statement.
type legacyStmt struct {
	stmt driver.Stmt
}

func (s legacyStmt) Close() error { return s.stmt.Close() }

func (s legacyStmt) NumInput() int { return -1 }

func (s legacyStmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.stmt.Exec(args) //nolint:staticcheck // legacy path under test
}

func (s legacyStmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.stmt.Query(args) //nolint:staticcheck // legacy path under test
}

func TestNamedValues(t *testing.T) {
	tests := []struct {
		name    string
		conn    driver.Conn
		params  []*provider.Parameter
		want    []driver.NamedValue
		wantErr bool
	}{
		{
			name:   "given plain connection, then applies the default converter",
			conn:   &prepareOnlyConn{},
			params: []*provider.Parameter{{Value: 3}, {Value: "x"}, nil},
			want: []driver.NamedValue{
				{Ordinal: 1, Value: int64(3)},
				{Ordinal: 2, Value: "x"},
				{Ordinal: 3, Value: nil},
			},
		},
		{
			name:   "given named value checker, then it converts first and skips fall through",
			conn:   &checkingConn{},
			params: []*provider.Parameter{{Value: "x"}, {Value: int32(2)}},
			want: []driver.NamedValue{
				{Ordinal: 1, Value: "UPPER:x"},
				{Ordinal: 2, Value: int64(2)},
			},
		},
		{
			name:    "given checker rejecting a value, then returns an error",
			conn:    &checkingConn{},
			params:  []*provider.Parameter{{Value: ""}},
			wantErr: true,
		},
		{
			name:    "given unconvertible value, then returns an error",
			conn:    &prepareOnlyConn{},
			params:  []*provider.Parameter{{Value: struct{}{}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.NamedValues(tt.conn, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCommandDefinition(t *testing.T) {
	t.Run("given nil prototype, then returns ErrNilCommand", func(t *testing.T) {
		def, err := provider.NewCommandDefinition(nil)

		assert.ErrorIs(t, err, provider.ErrNilCommand)
		assert.Nil(t, def)
	})

	t.Run("given prototype, then each command is a fresh clone", func(t *testing.T) {
		proto := provider.NewTextCommand("SELECT ?", &provider.Parameter{Name: "p0"})
		def, err := provider.NewCommandDefinition(proto)
		require.NoError(t, err)
		proto.Parameters()[0].Value = "changed later"

		a, err := def.CreateCommand()
		require.NoError(t, err)
		b, err := def.CreateCommand()
		require.NoError(t, err)
		a.Parameters()[0].Value = 1

		assert.Equal(t, "SELECT ?", a.Text())
		assert.Nil(t, b.Parameters()[0].Value)
		assert.NotSame(t, a, b)
	})
}
