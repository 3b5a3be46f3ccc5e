package profiler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const defaultListLimit = 100

// HandlerConfig configures the results handler.
type HandlerConfig struct {
	// Logger receives storage failures. The zero value discards.
	Logger zerolog.Logger

	// ListLimit caps GET /results when no ?limit is given. Default: 100.
	ListLimit int
}

type resultsHandler struct {
	storage Storage
	logger  zerolog.Logger
	limit   int
	loads   singleflight.Group
}

// Handler returns an http.Handler serving stored profiles:
//
//	GET /results        recent profile IDs, most recent first (?limit=n)
//	GET /results/{id}   a single profile as JSON
//
// Mount it under a prefix:
//
//	r.Mount("/profiler", profiler.Handler(store, profiler.HandlerConfig{}))
func Handler(storage Storage, cfg HandlerConfig) http.Handler {
	h := &resultsHandler{
		storage: storage,
		logger:  cfg.Logger,
		limit:   cfg.ListLimit,
	}
	if h.limit <= 0 {
		h.limit = defaultListLimit
	}

	r := chi.NewRouter()
	r.Get("/results", h.list)
	r.Get("/results/{id}", h.get)
	return r
}

func (h *resultsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := h.limit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	ids, err := h.storage.List(r.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list profiles")
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ids": ids})
}

// get coalesces concurrent loads of the same profile.
func (h *resultsHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	v, err, _ := h.loads.Do(id.String(), func() (any, error) {
		return h.storage.Load(r.Context(), id)
	})
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "profile not found")
		return
	case err != nil:
		h.logger.Error().Err(err).Str("profile_id", id.String()).Msg("failed to load profile")
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, v.(*Profiler))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
