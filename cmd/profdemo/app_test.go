package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/config"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/places"
	"github.com/kroma-labs/sentinel-profiler/internal/httpserver"
	"github.com/kroma-labs/sentinel-profiler/profiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Database.DSN = fmt.Sprintf("file:app%d?mode=memory&cache=shared", time.Now().UnixNano())
	cfg.Database.MaxOpenConns = 1
	cfg.HTTP.Addr = "127.0.0.1:0"
	return cfg
}

func TestApp(t *testing.T) {
	t.Run("given a running app, then requests are profiled and results are served", func(t *testing.T) {
		var srv *httpserver.Server
		app := fxtest.New(t, app(testConfig(), io.Discard), fx.Populate(&srv))
		app.RequireStart()
		t.Cleanup(app.RequireStop)
		base := "http://" + srv.Addr()

		body, err := json.Marshal(places.CreateRequest{
			Name:     "Jakarta",
			Location: places.Location{WKT: "POINT(106.8 -6.2)"},
		})
		require.NoError(t, err)
		resp, err := http.Post(base+"/places", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(httpserver.RequestIDHeader))
		profileID := resp.Header.Get(profiler.IDsHeader)
		require.NotEmpty(t, profileID)

		var created httpserver.Response[places.Response]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Equal(t, "Jakarta", created.Data.Name)
		assert.Equal(t, 4326, created.Data.Location.SRID)

		got := get(t, base+"/places/"+created.Data.ID)
		assert.Equal(t, http.StatusOK, got.status)
		assert.Contains(t, got.body, `"POINT(106.8 -6.2)"`)

		require.Eventually(t, func() bool {
			return get(t, base+"/profiler/results/"+profileID).status == http.StatusOK
		}, 2*time.Second, 20*time.Millisecond)
		result := get(t, base+"/profiler/results/"+profileID)
		assert.Contains(t, result.body, `INSERT INTO \"places\"`)

		assert.Equal(t, http.StatusOK, get(t, base+"/livez").status)
		assert.Equal(t, http.StatusOK, get(t, base+"/readyz").status)
		metrics := get(t, base+"/metrics")
		assert.Equal(t, http.StatusOK, metrics.status)
		assert.Contains(t, metrics.body, "go_goroutines")
	})

	t.Run("given health and metrics paths, then they are not profiled", func(t *testing.T) {
		var srv *httpserver.Server
		app := fxtest.New(t, app(testConfig(), io.Discard), fx.Populate(&srv))
		app.RequireStart()
		t.Cleanup(app.RequireStop)

		resp, err := http.Get("http://" + srv.Addr() + "/places")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.NotEmpty(t, resp.Header.Get(profiler.IDsHeader))

		resp, err = http.Get("http://" + srv.Addr() + "/livez")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Empty(t, resp.Header.Get(profiler.IDsHeader))
	})

	t.Run("given an unreachable database, then the app fails to build", func(t *testing.T) {
		cfg := testConfig()
		cfg.Database.Driver = "mysql"
		cfg.Database.DSN = "root@tcp(127.0.0.1:1)/profdemo?timeout=100ms"
		cfg.Database.ConnectTimeout = 300 * time.Millisecond

		app := fx.New(app(cfg, io.Discard))

		assert.ErrorContains(t, app.Err(), "database: connect mysql")
	})
}

type httpResult struct {
	status int
	body   string
}

func get(t *testing.T, url string) httpResult {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return httpResult{status: resp.StatusCode, body: string(body)}
}
