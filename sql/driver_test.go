package sql

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/kroma-labs/sentinel-profiler/profiler"
	"github.com/kroma-labs/sentinel-profiler/sql/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestWrapDriver(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{
			name: "given driver with options, then returns wrapped driver",
			opts: []Option{WithDBSystem("postgresql")},
		},
		{
			name: "given driver without options, then returns wrapped driver",
			opts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := &testDriver{conn: mocks.NewDriverConn(t)}

			wrapped := WrapDriver(drv, tt.opts...)

			require.NotNil(t, wrapped)
			assert.IsType(t, &profiledDriver{}, wrapped)
			assert.Same(t, drv, wrapped.(*profiledDriver).driver)
		})
	}
}

func TestProfiledDriver_Open(t *testing.T) {
	tests := []struct {
		name    string
		openErr error
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "given successful open, then returns profiled connection",
			wantErr: assert.NoError,
		},
		{
			name:    "given error on open, then returns error",
			openErr: assert.AnError,
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mockConn *mocks.DriverConn
			var conn driver.Conn
			if tt.openErr == nil {
				mockConn = mocks.NewDriverConn(t)
				conn = mockConn
			}
			drv := &profiledDriver{
				driver: &testDriver{conn: conn, openErr: tt.openErr},
				cfg:    newConfig(WithDBSystem("postgresql")),
			}

			got, err := drv.Open("test-dsn")

			tt.wantErr(t, err)
			if err == nil {
				require.IsType(t, &profiledConn{}, got)
				assert.Same(t, mockConn, RealConn(got))
			}
		})
	}
}

func TestProfiledDriver_OpenConnector(t *testing.T) {
	t.Run("given driver without DriverContext, then returns dsnConnector", func(t *testing.T) {
		drv := &profiledDriver{
			driver: &testDriver{conn: mocks.NewDriverConn(t)},
			cfg:    newConfig(),
		}

		connector, err := drv.OpenConnector("test-dsn")

		require.NoError(t, err)
		assert.IsType(t, &dsnConnector{}, connector)
		assert.Same(t, drv, connector.Driver())
	})

	t.Run("given driver with DriverContext, then decorates its connector", func(t *testing.T) {
		mockConn := mocks.NewDriverConn(t)
		inner := &closingConnector{conn: mockConn}
		drv := &profiledDriver{
			driver: &testContextDriver{connector: inner},
			cfg:    newConfig(),
		}

		connector, err := drv.OpenConnector("test-dsn")
		require.NoError(t, err)
		require.IsType(t, &profiledConnector{}, connector)

		conn, err := connector.Connect(context.Background())
		require.NoError(t, err)
		assert.IsType(t, &profiledConn{}, conn)
		assert.Same(t, mockConn, RealConn(conn))
		assert.Same(t, drv, connector.Driver())

		require.NoError(t, connector.(*profiledConnector).Close())
		assert.True(t, inner.closed)
	})
}

func TestDsnConnector_Connect(t *testing.T) {
	tests := []struct {
		name    string
		openErr error
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "given valid dsn, then returns profiled connection",
			wantErr: assert.NoError,
		},
		{
			name:    "given error on connect, then returns error",
			openErr: assert.AnError,
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var conn driver.Conn
			if tt.openErr == nil {
				conn = mocks.NewDriverConn(t)
			}
			drv := &profiledDriver{
				driver: &testDriver{conn: conn, openErr: tt.openErr},
				cfg:    newConfig(),
			}
			connector := &dsnConnector{dsn: "test-dsn", driver: drv}

			got, err := connector.Connect(context.Background())

			tt.wantErr(t, err)
			if err == nil {
				assert.IsType(t, &profiledConn{}, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Run("given registered driver, then records every command in the profile", func(t *testing.T) {
		db, err := Open("sqlite", ":memory:", WithDBSystem("sqlite"), WithDBName("open-test"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		db.SetMaxOpenConns(1)

		assert.IsType(t, &profiledDriver{}, db.Driver())

		ctx, prof := profiler.Start(context.Background(), "open test")
		_, err = db.ExecContext(ctx, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)")
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, "INSERT INTO users (name) VALUES (?)", "alice")
		require.NoError(t, err)

		var name string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT name FROM users WHERE id = ?", 1).Scan(&name))
		require.NoError(t, prof.Stop(ctx))

		assert.Equal(t, "alice", name)
		timings := prof.CustomTimings(profiler.CategorySQL)
		require.Len(t, timings, 3)
		assert.Equal(t, profiler.ExecuteNonQuery, timings[0].ExecuteType)
		assert.Equal(t, "INSERT INTO users (name) VALUES (?)", timings[1].CommandString)
		assert.Equal(t, profiler.ExecuteReader, timings[2].ExecuteType)
		for _, ct := range timings {
			assert.NotNil(t, ct.DurationMilliseconds, ct.CommandString)
			assert.False(t, ct.Errored, ct.CommandString)
		}
	})

	t.Run("given same driver and options twice, then reuses the registration", func(t *testing.T) {
		first, err := Open("sqlite", ":memory:", WithDBName("reuse"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = first.Close() })

		second, err := Open("sqlite", ":memory:", WithDBName("reuse"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = second.Close() })

		assert.Same(t, first.Driver(), second.Driver())
	})

	t.Run("given unknown driver, then returns error", func(t *testing.T) {
		_, err := Open("no-such-driver", "dsn")

		assert.Error(t, err)
	})
}
