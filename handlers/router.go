package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type RouteMounter interface {
	Routes(r *mux.Router)
}

// NewRouter mounts every handler on one router behind the request logger.
// Unknown paths and methods answer with the same {message} body as errors.
func NewRouter(logger zerolog.Logger, mounters ...RouteMounter) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger(logger))
	for _, m := range mounters {
		m.Routes(r)
	}

	r.NotFoundHandler = RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, r, http.StatusNotFound, "route not found")
	}))
	r.MethodNotAllowedHandler = RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}))
	return r
}
