package dto

type PlaceResponse struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Kind           string      `json:"kind"`
	Location       Coordinates `json:"location"`
	DistanceMeters float64     `json:"distance_meters"`
	Zone           string      `json:"zone"`
}

type PlacesResponse struct {
	Center       Coordinates     `json:"center"`
	Source       string          `json:"source"`
	Kind         string          `json:"kind"`
	RadiusMeters float64         `json:"radius_meters"`
	Places       []PlaceResponse `json:"places"`
}
