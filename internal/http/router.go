package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-players-service/internal/http/handlers"
)

// NewRouter registers the player routes. Path variables only match decimal
// digits, so anything else falls through to the JSON 404 handler.
func NewRouter(handler *handlers.Handler) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Index).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)

	r.HandleFunc("/players", handler.ListPlayers).Methods(nethttp.MethodGet)
	r.HandleFunc("/players", handler.CreatePlayer).Methods(nethttp.MethodPost)
	r.HandleFunc("/players/squadnumber/{n:[0-9]+}", handler.GetPlayerBySquadNumber).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/{id:[0-9]+}", handler.GetPlayer).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/{id:[0-9]+}", handler.UpdatePlayer).Methods(nethttp.MethodPut)
	r.HandleFunc("/players/{id:[0-9]+}", handler.DeletePlayer).Methods(nethttp.MethodDelete)
	return r
}
