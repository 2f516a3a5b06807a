package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"jobs-service/db"
)

var errBadRequest = errors.New("malformed request body")

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func respondMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, messageResponse{Message: message})
}

// writeError is the single place where service errors become status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	switch {
	case errors.Is(err, db.ErrInvalidID), errors.Is(err, db.ErrValidation), errors.Is(err, errBadRequest):
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("bad request")
		respondMessage(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrNotFound):
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("not found")
		respondMessage(w, r, http.StatusNotFound, err.Error())
	default:
		logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		respondMessage(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// decodeJSON rejects bodies that are not a single JSON value matching dst,
// including ones carrying fields dst does not declare.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(errBadRequest, err.Error())
	}
	return nil
}

// handleCollection registers h on both the bare prefix and its trailing
// slash form, so /api/jobs and /api/jobs/ reach the same handler.
func handleCollection(r *mux.Router, h http.HandlerFunc, method string) {
	r.HandleFunc("", h).Methods(method)
	r.HandleFunc("/", h).Methods(method)
}
