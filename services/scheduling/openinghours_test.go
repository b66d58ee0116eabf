package scheduling

import (
	"testing"
	"time"

	"meetly/models"
)

func mondayHours() []models.OpeningHours {
	return []models.OpeningHours{
		{Day: "Monday", Open: "09:00", Close: "17:00"},
	}
}

func TestValidateOpeningHours(t *testing.T) {
	cases := []struct {
		name    string
		entries []models.OpeningHours
		wantErr bool
	}{
		{"empty schedule", nil, false},
		{"single valid day", mondayHours(), false},
		{"full week", []models.OpeningHours{
			{Day: "Sunday", Open: "08:00", Close: "16:00"},
			{Day: "Monday", Open: "09:00", Close: "17:00"},
			{Day: "Tuesday", Open: "09:00", Close: "17:00"},
			{Day: "Wednesday", Open: "09:00", Close: "17:00"},
			{Day: "Thursday", Open: "09:00", Close: "17:00"},
			{Day: "Friday", Open: "08:30", Close: "13:00"},
		}, false},
		{"saturday not bookable", []models.OpeningHours{
			{Day: "Saturday", Open: "09:00", Close: "17:00"},
		}, true},
		{"unknown day name", []models.OpeningHours{
			{Day: "Monday ", Open: "09:00", Close: "17:00"},
		}, true},
		{"bad hour", []models.OpeningHours{
			{Day: "Monday", Open: "24:00", Close: "25:00"},
		}, true},
		{"bad minute", []models.OpeningHours{
			{Day: "Monday", Open: "09:60", Close: "17:00"},
		}, true},
		{"missing leading zero", []models.OpeningHours{
			{Day: "Monday", Open: "9:00", Close: "17:00"},
		}, true},
		{"open equals close", []models.OpeningHours{
			{Day: "Monday", Open: "09:00", Close: "09:00"},
		}, true},
		{"open after close", []models.OpeningHours{
			{Day: "Monday", Open: "17:00", Close: "09:00"},
		}, true},
		{"duplicate day same values", []models.OpeningHours{
			{Day: "Monday", Open: "09:00", Close: "17:00"},
			{Day: "Monday", Open: "09:00", Close: "17:00"},
		}, true},
		{"duplicate day different values", []models.OpeningHours{
			{Day: "Monday", Open: "09:00", Close: "12:00"},
			{Day: "Tuesday", Open: "09:00", Close: "12:00"},
			{Day: "Monday", Open: "13:00", Close: "17:00"},
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOpeningHours(tc.entries)
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				assertAppError(t, err, 422)
			}
		})
	}
}

func TestWithinOpeningHours(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := func(hour, min, durMin int) models.Interval {
		start := time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
		return models.Interval{Start: start, End: start.Add(time.Duration(durMin) * time.Minute)}
	}

	cases := []struct {
		name      string
		candidate models.Interval
		wantErr   bool
	}{
		{"inside window", monday(10, 0, 30), false},
		{"starts at open", monday(9, 0, 30), false},
		{"ends at close", monday(16, 30, 30), false},
		{"ends past close", monday(16, 45, 30), true},
		{"starts before open", monday(8, 45, 30), true},
		{"fills full window", monday(9, 0, 480), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := WithinOpeningHours(mondayHours(), tc.candidate, time.UTC)
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				assertAppError(t, err, 422)
			}
		})
	}
}

func TestWithinOpeningHours_ClosedDay(t *testing.T) {
	// 2026-01-06 is a Tuesday; the schedule only covers Monday.
	start := time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)
	candidate := models.Interval{Start: start, End: start.Add(30 * time.Minute)}

	err := WithinOpeningHours(mondayHours(), candidate, time.UTC)
	assertAppError(t, err, 422)
}

func TestWithinOpeningHours_SpanningMidnight(t *testing.T) {
	hours := []models.OpeningHours{{Day: "Monday", Open: "00:30", Close: "23:30"}}
	start := time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)
	candidate := models.Interval{Start: start, End: start.Add(2 * time.Hour)}

	err := WithinOpeningHours(hours, candidate, time.UTC)
	assertAppError(t, err, 422)
}

func TestWithinOpeningHours_UsesConfiguredTimezone(t *testing.T) {
	// 10:00 UTC is 12:00 in Helsinki (UTC+2 in January). With a schedule
	// opening at 11:00 local, the meeting passes only when the configured
	// zone is applied.
	helsinki, err := time.LoadLocation("Europe/Helsinki")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	hours := []models.OpeningHours{{Day: "Monday", Open: "11:00", Close: "17:00"}}
	start := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	candidate := models.Interval{Start: start, End: start.Add(30 * time.Minute)}

	if err := WithinOpeningHours(hours, candidate, helsinki); err != nil {
		t.Fatalf("expected in-window in Helsinki, got %v", err)
	}
	if err := WithinOpeningHours(hours, candidate, time.UTC); err == nil {
		t.Fatal("expected out-of-window in UTC")
	}
}
