package handlers

import (
	"commute-estimator-service/internal/api/dto"
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/services"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// PlaceHandler lists real houses or restaurants around a center.
type PlaceHandler struct {
	Centers *services.CenterResolver
	Places  *services.PlaceService
}

func (h *PlaceHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	kind, err := domain.ParsePlaceKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var radius float64
	if raw := strings.TrimSpace(r.URL.Query().Get("radius")); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(radius) || math.IsInf(radius, 0) {
			writeError(w, r, http.StatusBadRequest, "radius must be a finite number of meters")
			return
		}
	}

	center, src, ok := resolveCenter(w, r, h.Centers)
	if !ok {
		return
	}

	places, err := h.Places.Nearby(r.Context(), center, radius, kind)
	if err != nil {
		writeServiceError(w, r, "nearby places", err)
		return
	}

	res := dto.PlacesResponse{
		Center:       dto.FromCoordinates(center),
		Source:       string(src),
		Kind:         string(kind),
		RadiusMeters: services.SearchRadius(radius),
		Places:       make([]dto.PlaceResponse, 0, len(places)),
	}
	for _, p := range places {
		res.Places = append(res.Places, dto.PlaceResponse{
			ID:             p.Place.ID,
			Name:           p.Place.Name,
			Kind:           string(p.Place.Kind),
			Location:       dto.FromCoordinates(p.Place.Location),
			DistanceMeters: p.DistanceMeters,
			Zone:           string(p.Zone),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
