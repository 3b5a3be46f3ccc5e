package profiler

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// IDsHeader carries the ID of the profile recorded for a response.
const IDsHeader = "X-MiniProfiler-Ids"

// MiddlewareConfig configures the profiling middleware.
type MiddlewareConfig struct {
	// Storage receives every finished profile. Required.
	Storage Storage

	// Logger receives storage failures. The zero value discards.
	Logger zerolog.Logger

	// SkipPaths are never profiled. Health checks and the results
	// endpoints themselves usually belong here.
	SkipPaths []string

	// SampleRate limits how many requests per second are profiled.
	// Zero profiles every request.
	SampleRate rate.Limit

	// SampleBurst is the burst size for SampleRate. Default: 1.
	SampleBurst int

	// UserFunc optionally names the user a profile belongs to.
	UserFunc func(r *http.Request) string
}

// Middleware returns HTTP middleware that profiles each request. Database
// commands issued with the request context are recorded as custom timings.
//
// The profile ID is announced in the X-MiniProfiler-Ids response header
// before the handler writes its response.
//
// Example:
//
//	store := profiler.NewMemoryStorage(0)
//	handler := profiler.Middleware(profiler.MiddlewareConfig{
//	    Storage:   store,
//	    SkipPaths: []string{"/livez", "/metrics"},
//	})(mux)
func Middleware(cfg MiddlewareConfig) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = true
	}

	var limiter *rate.Limiter
	if cfg.SampleRate > 0 {
		burst := cfg.SampleBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(cfg.SampleRate, burst)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] || (limiter != nil && !limiter.Allow()) {
				next.ServeHTTP(w, r)
				return
			}

			opts := []Option{WithStorage(cfg.Storage)}
			if cfg.UserFunc != nil {
				opts = append(opts, WithUser(cfg.UserFunc(r)))
			}

			ctx, prof := Start(r.Context(), r.Method+" "+r.URL.Path, opts...)
			w.Header().Add(IDsHeader, prof.ID.String())

			next.ServeHTTP(w, r.WithContext(ctx))

			if err := prof.Stop(ctx); err != nil {
				cfg.Logger.Warn().
					Err(err).
					Str("profile_id", prof.ID.String()).
					Str("path", r.URL.Path).
					Msg("failed to save profile")
			}
		})
	}
}
