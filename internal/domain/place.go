package domain

import "fmt"

type PlaceKind string

const (
	PlaceRestaurant PlaceKind = "restaurant"
	PlaceHouse      PlaceKind = "house"
)

func ParsePlaceKind(s string) (PlaceKind, error) {
	switch PlaceKind(s) {
	case PlaceRestaurant, PlaceHouse:
		return PlaceKind(s), nil
	case "":
		return PlaceRestaurant, nil
	default:
		return "", fmt.Errorf("unknown place kind %q", s)
	}
}

// A real point of interest returned by a place source.
type Place struct {
	ID       int64
	Name     string
	Kind     PlaceKind
	Location Coordinates
}
