package models

import "time"

// Interval is a half-open time range [Start, End). End is exclusive so
// back-to-back meetings never conflict.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
