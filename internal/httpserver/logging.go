package httpserver

import (
	"net/http"
	"time"

	"github.com/kroma-labs/sentinel-profiler/profiler"
	"github.com/rs/zerolog"
)

// LoggerConfig configures the request logging middleware.
type LoggerConfig struct {
	Logger zerolog.Logger

	// SkipPaths are not logged.
	SkipPaths []string
}

// Logger logs one line per request: method, path, status, duration and
// size, plus the request ID and the profile ID when present. 4xx responses
// log at warn, 5xx at error.
func Logger(cfg LoggerConfig) Middleware {
	skipPaths := make(map[string]bool, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skipPaths[path] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			event := cfg.Logger.Info()
			switch {
			case wrapped.Status() >= 500:
				event = cfg.Logger.Error()
			case wrapped.Status() >= 400:
				event = cfg.Logger.Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapped.Status()).
				Dur("duration", time.Since(start)).
				Int("bytes", wrapped.BytesWritten()).
				Str("remote_addr", r.RemoteAddr)

			if id := RequestIDFromContext(r.Context()); id != "" {
				event.Str("request_id", id)
			}
			if id := wrapped.Header().Get(profiler.IDsHeader); id != "" {
				event.Str("profile_id", id)
			}

			event.Msg("request completed")
		})
	}
}
