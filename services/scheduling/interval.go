// File: services/scheduling/interval.go
package scheduling

import (
	"time"

	"meetly/models"
	"meetly/utils"
)

// BuildInterval converts a requested start instant and a service duration
// into the concrete half-open interval the meeting would occupy. Minute
// arithmetic goes through time.Add so hour and day rollovers are handled by
// the calendar, not the caller.
func BuildInterval(start time.Time, durationMinutes int) (models.Interval, error) {
	if start.IsZero() {
		return models.Interval{}, utils.ErrValidation("invalid start date")
	}
	if durationMinutes <= 0 {
		return models.Interval{}, utils.ErrValidation("duration must be a positive number of minutes")
	}
	return models.Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// Overlaps reports whether two half-open intervals share at least one
// instant: s1 < e2 && s2 < e1. Touching boundaries (one ends exactly when
// the other starts) do not overlap, which is what allows back-to-back
// meetings.
func Overlaps(a, b models.Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
