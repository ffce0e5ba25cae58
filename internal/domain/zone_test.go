package domain

import (
	"math"
	"testing"
)

func TestGreatCircleMeters(t *testing.T) {
	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	got := GreatCircleMeters(Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 1, Lng: 0})
	if math.Abs(got-111195) > 5 {
		t.Fatalf("distance = %.1f, want ~111195", got)
	}

	if d := GreatCircleMeters(Coordinates{Lat: 43, Lng: -80}, Coordinates{Lat: 43, Lng: -80}); d != 0 {
		t.Fatalf("same point distance = %v, want 0", d)
	}
}

func TestZoneForDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   CommuteZone
	}{
		{0, ZoneClose},
		{14999, ZoneClose},
		{15000, ZoneClose},
		{15001, ZoneMiddle},
		{30000, ZoneMiddle},
		{44999.9, ZoneFar},
		{45000, ZoneFar},
		{45000.1, ZoneOutside},
	}

	for _, tt := range tests {
		if got := ZoneForDistance(tt.meters); got != tt.want {
			t.Errorf("ZoneForDistance(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestClassifyZone(t *testing.T) {
	center := Coordinates{Lat: 0, Lng: 0}

	// 0.2 degrees of latitude ~22 km.
	if got := ClassifyZone(center, Coordinates{Lat: 0.2, Lng: 0}); got != ZoneMiddle {
		t.Errorf("zone = %q, want %q", got, ZoneMiddle)
	}
	if got := ClassifyZone(center, Coordinates{Lat: 1, Lng: 0}); got != ZoneOutside {
		t.Errorf("zone = %q, want %q", got, ZoneOutside)
	}
}

func TestCoordinatesKeyAndValid(t *testing.T) {
	c := Coordinates{Lat: 43.4512345678, Lng: -80.49}
	if got := c.Key(); got != "43.451235,-80.490000" {
		t.Errorf("Key() = %q", got)
	}
	if !c.Valid() {
		t.Error("expected valid coordinates")
	}
	if (Coordinates{Lat: 90.5, Lng: 0}).Valid() {
		t.Error("expected lat 90.5 to be invalid")
	}
	if (Coordinates{Lat: 0, Lng: -180.01}).Valid() {
		t.Error("expected lng -180.01 to be invalid")
	}
}
