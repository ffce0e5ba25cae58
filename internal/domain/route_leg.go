package domain

// Represents one directed segment of a driving route.
// Either measurement may be absent (nil) when the routing service has not
// produced it; an absent measurement means "no route yet", not zero.
type RouteLeg struct {
	DistanceMeters  *int
	DurationSeconds *int
}

func NewRouteLeg(distanceMeters, durationSeconds int) *RouteLeg {
	return &RouteLeg{
		DistanceMeters:  &distanceMeters,
		DurationSeconds: &durationSeconds,
	}
}

// Complete reports whether both measurements are present.
func (l *RouteLeg) Complete() bool {
	return l != nil && l.DistanceMeters != nil && l.DurationSeconds != nil
}
