// File: services/scheduling/openinghours.go
package scheduling

import (
	"fmt"
	"regexp"
	"time"

	"meetly/models"
	"meetly/utils"
)

// Businesses operate Sunday through Friday; Saturday is not bookable.
var validDays = map[string]bool{
	"Sunday":    true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
}

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// hhmm turns a validated "HH:MM" string into a comparable integer (e.g.
// "09:30" -> 930).
func hhmm(s string) int {
	return int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[3]-'0')*10 + int(s[4]-'0')
}

// ValidateOpeningHours checks a declared weekly schedule for structural
// correctness: recognized weekday names, well-formed 24-hour times, open
// strictly before close, and at most one entry per day. Pure; the first
// violation fails the whole schedule.
func ValidateOpeningHours(entries []models.OpeningHours) error {
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !validDays[entry.Day] {
			return utils.ErrValidation(fmt.Sprintf("unrecognized weekday %q", entry.Day))
		}
		if !timePattern.MatchString(entry.Open) || !timePattern.MatchString(entry.Close) {
			return utils.ErrValidation(fmt.Sprintf("opening hours for %s must use 24-hour HH:MM times", entry.Day))
		}
		if hhmm(entry.Open) >= hhmm(entry.Close) {
			return utils.ErrValidation(fmt.Sprintf("opening time must precede closing time on %s", entry.Day))
		}
		if seen[entry.Day] {
			return utils.ErrValidation(fmt.Sprintf("duplicate opening hours entry for %s", entry.Day))
		}
		seen[entry.Day] = true
	}
	return nil
}

// WithinOpeningHours checks that the candidate interval fits inside the
// business's window for the weekday the start falls on. Weekday derivation
// and time-of-day extraction use the configured business timezone, never the
// server's ambient zone. Meetings spanning midnight are rejected.
func WithinOpeningHours(hours []models.OpeningHours, candidate models.Interval, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	start := candidate.Start.In(loc)
	end := candidate.End.In(loc)

	day := start.Weekday().String()
	var window *models.OpeningHours
	for i := range hours {
		if hours[i].Day == day {
			window = &hours[i]
			break
		}
	}
	if window == nil {
		return utils.ErrValidation(fmt.Sprintf("business is closed on %s", day))
	}

	if start.Year() != end.Year() || start.YearDay() != end.YearDay() {
		return utils.ErrValidation("meeting may not span midnight")
	}

	startTime := start.Hour()*100 + start.Minute()
	endTime := end.Hour()*100 + end.Minute()
	if startTime < hhmm(window.Open) || endTime > hhmm(window.Close) {
		return utils.ErrValidation(fmt.Sprintf("meeting falls outside opening hours %s-%s", window.Open, window.Close))
	}
	return nil
}
