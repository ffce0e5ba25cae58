package routing

import (
	"bytes"
	"commute-estimator-service/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// ORS omits summary fields it could not compute, so both are pointers.
type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance *float64 `json:"distance"`
			Duration *float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// fetchLeg retrieves the distance and duration of the first route between
// two points using the OpenRouteService directions endpoint.
func (o *ORSRouteProvider) fetchLeg(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (*domain.RouteLeg, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		var he *httpStatusError
		// ORS answers 404 when either point cannot be snapped to the road network.
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %v", ErrNoRoute, err)
		}
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return nil, ErrNoRoute
	}

	summary := dr.Routes[0].Summary

	// ORS returns float metrics; round to nearest integer for domain consistency.
	return &domain.RouteLeg{
		DistanceMeters:  roundedOrNil(summary.Distance),
		DurationSeconds: roundedOrNil(summary.Duration),
	}, nil
}

func roundedOrNil(v *float64) *int {
	if v == nil {
		return nil
	}
	r := int(math.Round(*v))
	return &r
}
