package api

import (
	"commute-estimator-service/internal/api/handlers"
	"commute-estimator-service/internal/services"
	"net/http"
)

// Services groups what the handlers depend on. Places may hold a
// PlaceService without a source; /places then answers 503.
type Services struct {
	Centers  *services.CenterResolver
	Points   *services.PointService
	Commutes *services.CommuteService
	Places   *services.PlaceService
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(s Services) http.Handler {
	mux := http.NewServeMux()

	mapHandler := &handlers.MapHandler{Centers: s.Centers, Points: s.Points}
	commuteHandler := &handlers.CommuteHandler{Centers: s.Centers, Commutes: s.Commutes}
	placeHandler := &handlers.PlaceHandler{Centers: s.Centers, Places: s.Places}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/center", mapHandler.Center)
	mux.HandleFunc("/points", mapHandler.ListPoints)
	mux.HandleFunc("/zones", mapHandler.Zones)
	mux.HandleFunc("/commute", commuteHandler.Estimate)
	mux.HandleFunc("/commutes", commuteHandler.EstimateBatch)
	mux.HandleFunc("/places", placeHandler.Nearby)

	return requestIDMiddleware(loggingMiddleware(mux))
}
