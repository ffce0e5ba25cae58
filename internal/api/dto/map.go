package dto

type CenterResponse struct {
	Center Coordinates `json:"center"`
	Source string      `json:"source"`
}

type PointResponse struct {
	Key            int         `json:"key"`
	Location       Coordinates `json:"location"`
	DistanceMeters float64     `json:"distance_meters"`
	Zone           string      `json:"zone"`
}

type PointsResponse struct {
	Center Coordinates     `json:"center"`
	Source string          `json:"source"`
	Count  int             `json:"count"`
	Points []PointResponse `json:"points"`
}

type ZoneResponse struct {
	Zone         string  `json:"zone"`
	RadiusMeters float64 `json:"radius_meters"`
}

type ZonesResponse struct {
	Center Coordinates    `json:"center"`
	Source string         `json:"source"`
	Zones  []ZoneResponse `json:"zones"`
}
