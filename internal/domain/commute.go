package domain

import (
	"errors"
	"math"
)

const (
	// 260 working days, one leg each way.
	CommutesPerYear  = 260 * 2
	FuelLitersPerKM  = 10.0 / 100
	FuelCostPerLiter = 1.5
	SecondsPerDay    = 60 * 60 * 24
)

// floorTolerance absorbs float error so exact products (e.g. 1560) are not floored to 1559.
const floorTolerance = 1e-9

var ErrNegativeMeasurement = errors.New("route leg measurement must not be negative")

// Yearly time and fuel cost of driving a single leg for every commute of the year.
type CommuteEstimate struct {
	DaysPerYear int
	AnnualCost  int
}

// EstimateCommute derives the yearly commute statistics for a one-way leg.
//
// A nil leg, or a leg missing either measurement, yields (nil, nil): there is
// nothing to display yet. Negative measurements are rejected with
// ErrNegativeMeasurement.
func EstimateCommute(leg *RouteLeg) (*CommuteEstimate, error) {
	if !leg.Complete() {
		return nil, nil
	}

	meters := *leg.DistanceMeters
	seconds := *leg.DurationSeconds
	if meters < 0 || seconds < 0 {
		return nil, ErrNegativeMeasurement
	}

	days := CommutesPerYear * seconds / SecondsPerDay

	km := float64(meters) / 1000
	cost := math.Floor(km*FuelLitersPerKM*FuelCostPerLiter*CommutesPerYear + floorTolerance)

	return &CommuteEstimate{
		DaysPerYear: days,
		AnnualCost:  int(cost),
	}, nil
}
