package domain

import (
	"fmt"
	"time"
)

// DayPart is a fixed-hour classification of a slot's start time
type DayPart string

const (
	DayPartMorning   DayPart = "MORNING"
	DayPartAfternoon DayPart = "AFTERNOON"
	DayPartEvening   DayPart = "EVENING"
)

// DayParts lists the day-parts in classification order
var DayParts = []DayPart{DayPartMorning, DayPartAfternoon, DayPartEvening}

// ParseDayPart converts a string into a DayPart
func ParseDayPart(s string) (DayPart, error) {
	dp := DayPart(s)
	if !dp.IsValid() {
		return "", fmt.Errorf("unknown day part %q", s)
	}
	return dp, nil
}

// IsValid returns true if the value is one of the known day-parts
func (d DayPart) IsValid() bool {
	switch d {
	case DayPartMorning, DayPartAfternoon, DayPartEvening:
		return true
	default:
		return false
	}
}

// Slot is a concrete bookable interval [Start, End) on a calendar date
type Slot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the slot; the last slot of a range may be shorter
// than the service duration.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Label formats the slot as "9:00 AM - 10:00 AM"
func (s Slot) Label() string {
	return s.Start.Format(SlotLabelFormat) + " - " + s.End.Format(SlotLabelFormat)
}
