package handlers

import (
	"commute-estimator-service/internal/api/dto"
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/services"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// MapHandler serves everything a map page needs before a marker is clicked:
// the center, the demo markers and the commute rings.
type MapHandler struct {
	Centers *services.CenterResolver
	Points  *services.PointService
}

func (h *MapHandler) Center(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	center, src, ok := resolveCenter(w, r, h.Centers)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CenterResponse{
		Center: dto.FromCoordinates(center),
		Source: string(src),
	})
}

func (h *MapHandler) ListPoints(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	count, err := intParam(r, "count", h.Points.DefaultCount())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if count < 0 || count > domain.MaxPointCount {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("count must be between 0 and %d", domain.MaxPointCount))
		return
	}

	var seed *uint64
	if raw := strings.TrimSpace(r.URL.Query().Get("seed")); raw != "" {
		s, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "seed must be a non-negative integer")
			return
		}
		seed = &s
	}

	center, src, ok := resolveCenter(w, r, h.Centers)
	if !ok {
		return
	}

	points := h.Points.Generate(center, &count, seed)

	res := dto.PointsResponse{
		Center: dto.FromCoordinates(center),
		Source: string(src),
		Count:  len(points),
		Points: make([]dto.PointResponse, 0, len(points)),
	}
	for _, p := range points {
		res.Points = append(res.Points, dto.PointResponse{
			Key:            p.Key,
			Location:       dto.FromCoordinates(p.Location),
			DistanceMeters: p.DistanceMeters,
			Zone:           string(p.Zone),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MapHandler) Zones(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	center, src, ok := resolveCenter(w, r, h.Centers)
	if !ok {
		return
	}

	res := dto.ZonesResponse{
		Center: dto.FromCoordinates(center),
		Source: string(src),
		Zones:  make([]dto.ZoneResponse, 0, len(domain.CommuteRings)),
	}
	for _, ring := range domain.CommuteRings {
		res.Zones = append(res.Zones, dto.ZoneResponse{
			Zone:         string(ring.Zone),
			RadiusMeters: ring.RadiusMeters,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// resolveCenter turns the query string into a center. It writes the error
// response itself and reports whether to continue.
func resolveCenter(
	w http.ResponseWriter,
	r *http.Request,
	centers *services.CenterResolver,
) (domain.Coordinates, services.CenterSource, bool) {
	q, err := centerQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return domain.Coordinates{}, "", false
	}

	center, src, err := centers.Resolve(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, "resolve center", err)
		return domain.Coordinates{}, "", false
	}

	return center, src, true
}
