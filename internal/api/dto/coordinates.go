package dto

import "commute-estimator-service/internal/domain"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func FromCoordinates(c domain.Coordinates) Coordinates {
	return Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func (c Coordinates) Domain() domain.Coordinates {
	return domain.Coordinates{Lat: c.Lat, Lng: c.Lng}
}
