package present

import (
	"commute-estimator-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestDescribeEnglish(t *testing.T) {
	leg := domain.NewRouteLeg(20000, 1800)
	est, err := domain.EstimateCommute(leg)
	require.NoError(t, err)

	s := Describe(leg, est, language.English)
	require.NotNil(t, s)

	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "20.0 km", s.Distance)
	assert.Equal(t, "30 mins", s.Duration)
	assert.Equal(t, "10 days", s.DaysPerYear)
	assert.Equal(t, "$1,560", s.AnnualCost)
	assert.Equal(t,
		"This home is 20.0 km away from your office. That would take 30 mins each direction. That's 10 days in your car, each year at a cost of $1,560.",
		s.Text)
}

func TestDescribeGerman(t *testing.T) {
	leg := domain.NewRouteLeg(20000, 1800)
	s := Describe(leg, &domain.CommuteEstimate{DaysPerYear: 1, AnnualCost: 1560}, language.German)
	require.NotNil(t, s)

	assert.Equal(t, "20,0 km", s.Distance)
	assert.Equal(t, "30 Minuten", s.Duration)
	assert.Equal(t, "1 Tag", s.DaysPerYear)
	assert.Equal(t, "1.560 $", s.AnnualCost)
}

func TestDescribeNoResult(t *testing.T) {
	d := 100
	assert.Nil(t, Describe(nil, nil, language.English))
	assert.Nil(t, Describe(&domain.RouteLeg{DistanceMeters: &d}, &domain.CommuteEstimate{}, language.English))
	assert.Nil(t, Describe(domain.NewRouteLeg(1, 1), nil, language.English))
}

func TestFormatDistance(t *testing.T) {
	p := message.NewPrinter(language.English)

	tests := []struct {
		meters int
		want   string
	}{
		{0, "0 m"},
		{850, "850 m"},
		{1000, "1.0 km"},
		{20000, "20.0 km"},
		{123456, "123.5 km"},
	}

	for _, tt := range tests {
		if got := formatDistance(p, tt.meters); got != tt.want {
			t.Errorf("formatDistance(%d) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	p := message.NewPrinter(language.English)

	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 mins"},
		{10, "1 min"},
		{60, "1 min"},
		{1800, "30 mins"},
		{3600, "1 hour"},
		{3900, "1 hour 5 mins"},
		{7260, "2 hours 1 min"},
	}

	for _, tt := range tests {
		if got := formatDuration(p, tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.English, MatchLanguage(""))
	assert.Equal(t, language.English, MatchLanguage("fr-FR"))
	assert.Equal(t, language.German, MatchLanguage("de-CH,de;q=0.9,en;q=0.5"))
	assert.Equal(t, language.English, MatchLanguage("en-GB,en;q=0.9"))
}
