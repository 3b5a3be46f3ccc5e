package httpserver

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"
)

// HealthCheck reports whether a dependency is usable. A nil error is healthy.
type HealthCheck func(ctx context.Context) error

// CheckResult is the outcome of one readiness check.
type CheckResult struct {
	Status              string `json:"status"`
	Latency             string `json:"latency"`
	Message             string `json:"message,omitempty"`
	ConsecutiveFailures int    `json:"consecutive_failures,omitempty"`
}

// HealthResponse is the body of /livez and /readyz.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Uptime  string                 `json:"uptime"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

type checkState struct {
	check    HealthCheck
	failures int
}

// HealthHandler serves liveness and readiness checks.
//
//	health := httpserver.NewHealthHandler("profdemo", "1.0.0")
//	health.AddReadinessCheck("database", db.PingContext)
//	r.Get("/livez", health.LiveHandler())
//	r.Get("/readyz", health.ReadyHandler())
type HealthHandler struct {
	service   string
	version   string
	startTime time.Time

	mu     sync.Mutex
	checks map[string]*checkState
}

// NewHealthHandler creates a HealthHandler with no readiness checks.
func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{
		service:   service,
		version:   version,
		startTime: time.Now(),
		checks:    make(map[string]*checkState),
	}
}

// AddReadinessCheck registers check under name, replacing any previous one.
func (h *HealthHandler) AddReadinessCheck(name string, check HealthCheck) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = &checkState{check: check}
}

// LiveHandler always reports ok while the process serves requests.
func (h *HealthHandler) LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, h.response("ok", nil), "alive")
	}
}

// ReadyHandler runs every readiness check and answers 503 if any fails.
func (h *HealthHandler) ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()

		names := make([]string, 0, len(h.checks))
		for name := range h.checks {
			names = append(names, name)
		}
		sort.Strings(names)

		results := make(map[string]CheckResult, len(names))
		var errs []Error
		for _, name := range names {
			state := h.checks[name]
			start := time.Now()
			err := state.check(r.Context())

			result := CheckResult{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				state.failures++
				result.Status = "fail"
				result.Message = err.Error()
				result.ConsecutiveFailures = state.failures
				errs = append(errs, Error{Field: name, Message: err.Error()})
			} else {
				state.failures = 0
			}
			results[name] = result
		}

		if len(errs) > 0 {
			WriteJSON(w, http.StatusServiceUnavailable, Response[HealthResponse]{
				Data:    h.response("fail", results),
				Errors:  errs,
				Message: "one or more checks failed",
			})
			return
		}
		WriteSuccess(w, http.StatusOK, h.response("ok", results), "all checks passed")
	}
}

func (h *HealthHandler) response(status string, checks map[string]CheckResult) HealthResponse {
	return HealthResponse{
		Status:  status,
		Service: h.service,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Checks:  checks,
	}
}
