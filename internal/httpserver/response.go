package httpserver

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Response is the envelope of every JSON response the demo writes.
//
// Data carries the typed payload, Errors the field-level failures and
// Message a short human-readable summary.
//
// A success body:
//
//	{
//	  "data": {"id": 7, "name": "Monas", "wkt": "POINT(106.8271 -6.1754)"},
//	  "message": "place created"
//	}
//
// A failure body:
//
//	{
//	  "errors": [{"field": "wkt", "message": "not well-known text"}],
//	  "message": "invalid place"
//	}
type Response[T any] struct {
	Data    T       `json:"data,omitempty"`
	Errors  []Error `json:"errors,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Error is a single field-level error.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WriteJSON writes response with statusCode.
//
// Encoding failures are logged rather than returned: the header is already
// on the wire by then.
//
// Example:
//
//	type placeData struct {
//	    ID   int64  `json:"id"`
//	    Name string `json:"name"`
//	}
//
//	httpserver.WriteJSON(w, http.StatusOK, httpserver.Response[placeData]{
//	    Data:    placeData{ID: 7, Name: "Monas"},
//	    Message: "place found",
//	})
func WriteJSON[T any](w http.ResponseWriter, statusCode int, response Response[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().
			Err(err).
			Int("status_code", statusCode).
			Msg("failed to encode JSON response")
	}
}

// WriteError writes an error response.
//
// Example:
//
//	httpserver.WriteError(w, http.StatusBadRequest,
//	    "invalid place",
//	    httpserver.Error{Field: "wkt", Message: "not well-known text"},
//	)
func WriteError(w http.ResponseWriter, statusCode int, message string, errors ...Error) {
	WriteJSON(w, statusCode, Response[any]{
		Errors:  errors,
		Message: message,
	})
}

// WriteSuccess writes a response carrying data.
//
// Example:
//
//	httpserver.WriteSuccess(w, http.StatusCreated, place, "place created")
func WriteSuccess[T any](w http.ResponseWriter, statusCode int, data T, message string) {
	WriteJSON(w, statusCode, Response[T]{
		Data:    data,
		Message: message,
	})
}
