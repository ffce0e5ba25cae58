// Package present turns a routed leg and its commute estimate into
// human-readable, localized text.
package present

import (
	"commute-estimator-service/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the display languages; the first one is the fallback.
var Supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(Supported)

type Summary struct {
	Language    string
	Distance    string
	Duration    string
	DaysPerYear string
	AnnualCost  string
	Text        string
}

// MatchLanguage picks the best supported language for an Accept-Language header.
func MatchLanguage(acceptLanguage ...string) language.Tag {
	_, idx := language.MatchStrings(matcher, acceptLanguage...)
	return Supported[idx]
}

// Describe returns nil when there is nothing to display: an incomplete leg or
// a missing estimate.
func Describe(leg *domain.RouteLeg, est *domain.CommuteEstimate, tag language.Tag) *Summary {
	if !leg.Complete() || est == nil {
		return nil
	}

	p := message.NewPrinter(tag)

	s := &Summary{
		Language:    tag.String(),
		Distance:    formatDistance(p, *leg.DistanceMeters),
		Duration:    formatDuration(p, *leg.DurationSeconds),
		DaysPerYear: p.Sprintf(keyDays, est.DaysPerYear),
		AnnualCost:  p.Sprintf(keyCost, est.AnnualCost),
	}
	s.Text = p.Sprintf(keySentence, s.Distance, s.Duration, s.DaysPerYear, s.AnnualCost)

	return s
}

func formatDistance(p *message.Printer, meters int) string {
	if meters < 1000 {
		return p.Sprintf(keyMeters, meters)
	}
	return p.Sprintf(keyKilometers, float64(meters)/1000)
}

// formatDuration rounds to whole minutes. Any non-zero duration shows at least one minute.
func formatDuration(p *message.Printer, seconds int) string {
	mins := (seconds + 30) / 60
	if mins == 0 && seconds > 0 {
		mins = 1
	}
	if mins < 60 {
		return p.Sprintf(keyMinutes, mins)
	}

	hours, rest := mins/60, mins%60
	if rest == 0 {
		return p.Sprintf(keyHours, hours)
	}
	return p.Sprintf(keyHours, hours) + " " + p.Sprintf(keyMinutes, rest)
}
