package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kroma-labs/sentinel-profiler/internal/httpserver"
	"github.com/kroma-labs/sentinel-profiler/profiler"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	t.Run("given middleware, then the first is outermost", func(t *testing.T) {
		var order []string
		mark := func(name string) httpserver.Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		h := httpserver.Chain(mark("a"), mark("b"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			order = append(order, "handler")
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"a", "b", "handler"}, order)
	})
}

func TestRecovery(t *testing.T) {
	t.Run("given a panicking handler, then answers 500 and logs", func(t *testing.T) {
		var buf bytes.Buffer
		h := httpserver.Recovery(zerolog.New(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
		assert.Contains(t, buf.String(), `"panic":"boom"`)
	})
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "given an incoming ID, then forwards it", incoming: "abc-123"},
		{name: "given no ID, then generates one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := httpserver.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = httpserver.RequestIDFromContext(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(httpserver.RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(httpserver.RequestIDHeader))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
		})
	}

	t.Run("given a bare context, then returns empty", func(t *testing.T) {
		assert.Empty(t, httpserver.RequestIDFromContext(context.Background()))
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{name: "given success, then logs at info", path: "/users", status: http.StatusOK, wantLevel: `"level":"info"`, wantLog: true},
		{name: "given client error, then logs at warn", path: "/users", status: http.StatusNotFound, wantLevel: `"level":"warn"`, wantLog: true},
		{name: "given server error, then logs at error", path: "/users", status: http.StatusBadGateway, wantLevel: `"level":"error"`, wantLog: true},
		{name: "given skipped path, then logs nothing", path: "/livez", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			store := profiler.NewMemoryStorage(0)
			h := httpserver.Chain(
				httpserver.RequestID(),
				httpserver.Logger(httpserver.LoggerConfig{Logger: zerolog.New(&buf), SkipPaths: []string{"/livez"}}),
				profiler.Middleware(profiler.MiddlewareConfig{Storage: store}),
			)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), `"request_id":"`+rec.Header().Get(httpserver.RequestIDHeader)+`"`)
			assert.Contains(t, buf.String(), `"profile_id":"`+rec.Header().Get(profiler.IDsHeader)+`"`)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		check      httpserver.HealthCheck
		wantStatus int
		wantBody   string
	}{
		{
			name:       "given healthy checks, then ready",
			check:      func(context.Context) error { return nil },
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:       "given a failing check, then unavailable with the reason",
			check:      func(context.Context) error { return errors.New("schema missing") },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"message":"schema missing"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := httpserver.NewHealthHandler("profdemo", "1.0.0")
			health.AddReadinessCheck("database", tt.check)
			rec := httptest.NewRecorder()

			health.ReadyHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Contains(t, rec.Body.String(), `"service":"profdemo"`)
		})
	}

	t.Run("given liveness check, then always ok", func(t *testing.T) {
		health := httpserver.NewHealthHandler("profdemo", "1.0.0")
		health.AddReadinessCheck("database", func(context.Context) error { return errors.New("down") })
		rec := httptest.NewRecorder()

		health.LiveHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
