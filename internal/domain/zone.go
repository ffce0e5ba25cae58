package domain

import "github.com/golang/geo/s2"

const EarthRadiusMeters = 6371000.0

// CommuteZone buckets a point by its straight-line distance from the center.
type CommuteZone string

const (
	ZoneClose   CommuteZone = "close"
	ZoneMiddle  CommuteZone = "middle"
	ZoneFar     CommuteZone = "far"
	ZoneOutside CommuteZone = "outside"
)

// A concentric circle drawn around the center.
type ZoneRing struct {
	Zone         CommuteZone
	RadiusMeters float64
}

// CommuteRings are ordered from the innermost circle outwards.
var CommuteRings = []ZoneRing{
	{Zone: ZoneClose, RadiusMeters: 15000},
	{Zone: ZoneMiddle, RadiusMeters: 30000},
	{Zone: ZoneFar, RadiusMeters: 45000},
}

// MaxRingRadiusMeters is the radius of the outermost ring.
func MaxRingRadiusMeters() float64 {
	return CommuteRings[len(CommuteRings)-1].RadiusMeters
}

// GreatCircleMeters returns the great-circle distance between a and b.
func GreatCircleMeters(a, b Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// ClassifyZone returns the innermost ring containing p (boundary inclusive).
func ClassifyZone(center, p Coordinates) CommuteZone {
	return ZoneForDistance(GreatCircleMeters(center, p))
}

func ZoneForDistance(meters float64) CommuteZone {
	for _, r := range CommuteRings {
		if meters <= r.RadiusMeters {
			return r.Zone
		}
	}
	return ZoneOutside
}
