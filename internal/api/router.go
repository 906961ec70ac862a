package api

import (
	"net/http"
	"town-info-service/internal/api/handlers"
	"town-info-service/internal/services"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.TownInfoService, sessions *services.SessionRegistry) http.Handler {
	r := mux.NewRouter()

	town := handlers.NewTownHandler(svc, sessions)

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/", town.Page).Methods(http.MethodGet)
	r.HandleFunc("/town-info", town.Submit).Methods(http.MethodPost)
	r.HandleFunc("/map", town.Resize).Methods(http.MethodGet)
	r.HandleFunc("/api/town-info", town.Lookup).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	return loggingMiddleware(recoveryMiddleware(r))
}
