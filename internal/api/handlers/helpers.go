package handlers

import (
	"commute-estimator-service/internal/adapters/routing"
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/platform/obs"
	"commute-estimator-service/internal/services"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod answers 405 and returns false when r does not use method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object with no unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps service and adapter failures onto HTTP statuses.
// Unknown errors are logged and reported as 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCoordinates):
		writeError(w, r, http.StatusBadRequest, "coordinates out of range")
	case errors.Is(err, services.ErrTooManyDestinations):
		writeError(w, r, http.StatusBadRequest, services.ErrTooManyDestinations.Error())
	case errors.Is(err, routing.ErrNoGeocodeResult):
		writeError(w, r, http.StatusNotFound, "address not found")
	case errors.Is(err, routing.ErrNoRoute):
		writeError(w, r, http.StatusUnprocessableEntity, "no driving route between origin and destination")
	case errors.Is(err, domain.ErrNegativeMeasurement):
		writeError(w, r, http.StatusBadGateway, "routing provider returned an invalid leg")
	case errors.Is(err, services.ErrNoPlaceSource):
		writeError(w, r, http.StatusServiceUnavailable, "place search is not configured")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusGatewayTimeout, "upstream timeout")
	default:
		zap.L().Error(op+" failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// centerQuery reads lat/lng or address from the query string. lat and lng
// must come together.
func centerQuery(r *http.Request) (services.CenterQuery, error) {
	q := r.URL.Query()
	latRaw := strings.TrimSpace(q.Get("lat"))
	lngRaw := strings.TrimSpace(q.Get("lng"))

	cq := services.CenterQuery{Address: strings.TrimSpace(q.Get("address"))}

	if latRaw == "" && lngRaw == "" {
		return cq, nil
	}
	if latRaw == "" || lngRaw == "" {
		return cq, errors.New("lat and lng must be given together")
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return cq, fmt.Errorf("invalid lat %q", latRaw)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return cq, fmt.Errorf("invalid lng %q", lngRaw)
	}

	cq.Coordinates = &domain.Coordinates{Lat: lat, Lng: lng}
	return cq, nil
}

// intParam returns def when key is absent.
func intParam(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}
