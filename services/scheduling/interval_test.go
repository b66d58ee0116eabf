package scheduling

import (
	"errors"
	"testing"
	"time"

	"meetly/models"
	"meetly/utils"
)

func assertAppError(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Status != status {
		t.Fatalf("expected status %d, got %d (%s)", status, appErr.Status, appErr.Message)
	}
}

func TestBuildInterval_Basic(t *testing.T) {
	start := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	iv, err := BuildInterval(start, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !iv.Start.Equal(start) {
		t.Fatalf("expected start %s, got %s", start, iv.Start)
	}
	if !iv.End.Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("expected end 10:30, got %s", iv.End.Format(time.RFC3339))
	}
}

func TestBuildInterval_DayRollover(t *testing.T) {
	start := time.Date(2026, 1, 5, 23, 45, 0, 0, time.UTC)
	iv, err := BuildInterval(start, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 1, 6, 0, 15, 0, 0, time.UTC)
	if !iv.End.Equal(want) {
		t.Fatalf("expected end to roll into next day, got %s", iv.End.Format(time.RFC3339))
	}
}

func TestBuildInterval_RejectsBadInput(t *testing.T) {
	start := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	if _, err := BuildInterval(start, 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if _, err := BuildInterval(start, -15); err == nil {
		t.Fatal("expected error for negative duration")
	}
	_, err := BuildInterval(time.Time{}, 30)
	assertAppError(t, err, 422)
}

// threeClauseOverlap mirrors the store-level filter: candidate starts inside
// existing, candidate ends inside existing, or candidate contains existing.
func threeClauseOverlap(candidate, existing models.Interval) bool {
	startsInside := existing.Start.Before(candidate.End) && !existing.Start.Before(candidate.Start)
	endsInside := existing.End.After(candidate.Start) && !existing.End.After(candidate.End)
	contains := !existing.Start.After(candidate.Start) && !existing.End.Before(candidate.End)
	return startsInside || endsInside || contains
}

func TestOverlaps_BoundaryGrid(t *testing.T) {
	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	mk := func(startMin, endMin int) models.Interval {
		return models.Interval{
			Start: base.Add(time.Duration(startMin) * time.Minute),
			End:   base.Add(time.Duration(endMin) * time.Minute),
		}
	}
	existing := mk(0, 30) // [10:00, 10:30)

	cases := []struct {
		name      string
		candidate models.Interval
		want      bool
	}{
		{"identical", mk(0, 30), true},
		{"starts inside", mk(15, 45), true},
		{"ends inside", mk(-15, 15), true},
		{"contains existing", mk(-15, 45), true},
		{"contained by existing", mk(10, 20), true},
		{"back-to-back after", mk(30, 60), false},
		{"back-to-back before", mk(-30, 0), false},
		{"disjoint after", mk(60, 90), false},
		{"disjoint before", mk(-60, -30), false},
		{"one minute overlap at end", mk(29, 59), true},
		{"one minute overlap at start", mk(-29, 1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.candidate, existing); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// The canonical predicate and the store's three-clause form must
			// agree on every boundary case.
			if got := threeClauseOverlap(tc.candidate, existing); got != tc.want {
				t.Fatalf("threeClauseOverlap = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	a := models.Interval{Start: base, End: base.Add(30 * time.Minute)}
	b := models.Interval{Start: base.Add(15 * time.Minute), End: base.Add(45 * time.Minute)}

	if Overlaps(a, b) != Overlaps(b, a) {
		t.Fatal("overlap must be symmetric")
	}
}
