package places

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/kroma-labs/sentinel-profiler/internal/httpserver"
	"github.com/kroma-labs/sentinel-profiler/provider"
	"github.com/rs/zerolog"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Location is the JSON form of a geography.
type Location struct {
	SRID int    `json:"srid"`
	WKT  string `json:"wkt"`
}

// Response is the JSON form of a place.
type Response struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// CreateRequest is the body of POST /places.
type CreateRequest struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Service is what the handlers need from a Store.
type Service interface {
	ParseLocation(wkt string, srid int) (provider.Geography, error)
	Create(ctx context.Context, name string, location provider.Geography) (Place, error)
	Get(ctx context.Context, id string) (Place, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int) ([]Place, error)
}

// Handler serves the places API.
type Handler struct {
	svc    Service
	logger zerolog.Logger
}

// NewHandler creates a Handler over svc.
func NewHandler(svc Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Routes mounts:
//
//	GET    /places        list places (?limit=n)
//	POST   /places        create a place
//	GET    /places/{id}   get a place
//	DELETE /places/{id}   delete a place
func (h *Handler) Routes(r chi.Router) {
	r.Route("/places", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxListLimit {
			httpserver.WriteError(w, http.StatusBadRequest, "invalid limit",
				httpserver.Error{Field: "limit", Message: "must be between 1 and " + strconv.Itoa(maxListLimit)})
			return
		}
		limit = n
	}

	found, err := h.svc.List(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	out := make([]Response, len(found))
	for i, p := range found {
		out[i] = toResponse(p)
	}
	httpserver.WriteSuccess(w, http.StatusOK, out, "")
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid body",
			httpserver.Error{Field: "body", Message: err.Error()})
		return
	}

	var errs []httpserver.Error
	if req.Name == "" || len(req.Name) > 64 {
		errs = append(errs, httpserver.Error{Field: "name", Message: "must be 1 to 64 characters"})
	}
	location, err := h.svc.ParseLocation(req.Location.WKT, req.Location.SRID)
	if err != nil {
		errs = append(errs, httpserver.Error{Field: "location.wkt", Message: err.Error()})
	}
	if len(errs) > 0 {
		httpserver.WriteError(w, http.StatusBadRequest, "validation failed", errs...)
		return
	}

	place, err := h.svc.Create(r.Context(), req.Name, location)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpserver.WriteSuccess(w, http.StatusCreated, toResponse(place), "place created")
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	place, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ErrNotFound) {
		httpserver.WriteError(w, http.StatusNotFound, "place not found")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpserver.WriteSuccess(w, http.StatusOK, toResponse(place), "")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ErrNotFound) {
		httpserver.WriteError(w, http.StatusNotFound, "place not found")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("request_id", httpserver.RequestIDFromContext(r.Context())).
		Msg("places request failed")
	httpserver.WriteError(w, http.StatusInternalServerError, "internal server error")
}

func toResponse(p Place) Response {
	return Response{
		ID:       p.ID,
		Name:     p.Name,
		Location: Location{SRID: p.Location.SRID, WKT: p.Location.WKT},
	}
}
