package dto

type CommuteRequest struct {
	Origin        *Coordinates `json:"origin"`
	OriginAddress string       `json:"origin_address"`
	Destination   *Coordinates `json:"destination"`
}

type CommutesRequest struct {
	Origin        *Coordinates  `json:"origin"`
	OriginAddress string        `json:"origin_address"`
	Destinations  []Coordinates `json:"destinations"`
}

// Null measurements mean the router did not report them.
type LegResponse struct {
	DistanceMeters  *int `json:"distance_meters"`
	DurationSeconds *int `json:"duration_seconds"`
}

type EstimateResponse struct {
	DaysPerYear int `json:"days_per_year"`
	AnnualCost  int `json:"annual_cost"`
}

type SummaryResponse struct {
	Language    string `json:"language"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	DaysPerYear string `json:"days_per_year"`
	AnnualCost  string `json:"annual_cost"`
	Text        string `json:"text"`
}

type CommuteResponse struct {
	Origin      Coordinates       `json:"origin"`
	Destination Coordinates       `json:"destination"`
	Leg         LegResponse       `json:"leg"`
	Estimate    *EstimateResponse `json:"estimate"`
	Summary     *SummaryResponse  `json:"summary"`
}

type CommutesResponse struct {
	Origin  Coordinates       `json:"origin"`
	Results []CommuteResponse `json:"results"`
}
