package handlers

import (
	"commute-estimator-service/internal/api/dto"
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/present"
	"commute-estimator-service/internal/services"
	"fmt"
	"net/http"

	"golang.org/x/text/language"
)

type CommuteHandler struct {
	Centers  *services.CenterResolver
	Commutes *services.CommuteService
}

// Estimate routes one origin -> destination leg and returns the yearly figures.
func (h *CommuteHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CommuteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Destination == nil {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}
	dest := req.Destination.Domain()
	if !dest.Valid() {
		writeError(w, r, http.StatusBadRequest, "destination out of range")
		return
	}

	origin, ok := h.origin(w, r, req.Origin, req.OriginAddress)
	if !ok {
		return
	}

	result, err := h.Commutes.Estimate(r.Context(), origin, dest)
	if err != nil {
		writeServiceError(w, r, "estimate commute", err)
		return
	}

	tag := present.MatchLanguage(r.Header.Get("Accept-Language"))
	writeJSON(w, r, http.StatusOK, toCommuteResponse(origin, result, tag))
}

// EstimateBatch is the multi-destination form of Estimate.
func (h *CommuteHandler) EstimateBatch(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CommutesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Destinations) == 0 {
		writeError(w, r, http.StatusBadRequest, "destinations are required")
		return
	}
	if len(req.Destinations) > services.MaxBatchDestinations {
		writeError(w, r, http.StatusBadRequest, services.ErrTooManyDestinations.Error())
		return
	}

	dests := make([]domain.Coordinates, 0, len(req.Destinations))
	for i, d := range req.Destinations {
		c := d.Domain()
		if !c.Valid() {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("destination #%d out of range", i+1))
			return
		}
		dests = append(dests, c)
	}

	origin, ok := h.origin(w, r, req.Origin, req.OriginAddress)
	if !ok {
		return
	}

	results, err := h.Commutes.EstimateMany(r.Context(), origin, dests)
	if err != nil {
		writeServiceError(w, r, "estimate commutes", err)
		return
	}

	tag := present.MatchLanguage(r.Header.Get("Accept-Language"))
	res := dto.CommutesResponse{
		Origin:  dto.FromCoordinates(origin),
		Results: make([]dto.CommuteResponse, 0, len(results)),
	}
	for _, cr := range results {
		res.Results = append(res.Results, toCommuteResponse(origin, cr, tag))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CommuteHandler) origin(
	w http.ResponseWriter,
	r *http.Request,
	coords *dto.Coordinates,
	address string,
) (domain.Coordinates, bool) {
	q := services.CenterQuery{Address: address}
	if coords != nil {
		c := coords.Domain()
		q.Coordinates = &c
	}

	origin, _, err := h.Centers.Resolve(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, "resolve origin", err)
		return domain.Coordinates{}, false
	}
	return origin, true
}

func toCommuteResponse(origin domain.Coordinates, cr *services.CommuteResult, tag language.Tag) dto.CommuteResponse {
	res := dto.CommuteResponse{
		Origin:      dto.FromCoordinates(origin),
		Destination: dto.FromCoordinates(cr.Destination),
	}
	if cr.Leg != nil {
		res.Leg = dto.LegResponse{
			DistanceMeters:  cr.Leg.DistanceMeters,
			DurationSeconds: cr.Leg.DurationSeconds,
		}
	}
	if cr.Estimate != nil {
		res.Estimate = &dto.EstimateResponse{
			DaysPerYear: cr.Estimate.DaysPerYear,
			AnnualCost:  cr.Estimate.AnnualCost,
		}
	}
	if s := present.Describe(cr.Leg, cr.Estimate, tag); s != nil {
		res.Summary = &dto.SummaryResponse{
			Language:    s.Language,
			Distance:    s.Distance,
			Duration:    s.Duration,
			DaysPerYear: s.DaysPerYear,
			AnnualCost:  s.AnnualCost,
			Text:        s.Text,
		}
	}
	return res
}
