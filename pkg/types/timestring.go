package types

import (
	"errors"
	"fmt"
	"time"
)

// EndOfDay is the only HH:MM value past 23:59 that is accepted. It marks the
// end of a calendar day and is used as a closing time.
const EndOfDay TimeString = "24:00"

const minutesPerDay = 24 * 60

// ErrInvalidTimeString is returned when a value is not a 24-hour HH:MM string.
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a wall-clock time of day in 24-hour HH:MM format.
type TimeString string

// NewTimeString returns the HH:MM time of day of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString validates s and converts it to a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is HH:MM with 00 <= HH <= 23 (or exactly 24:00).
func (t TimeString) Validate() error {
	_, err := t.parse()
	return err
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	return t.parse()
}

// On anchors the time of day to the calendar date of day, in day's location.
// 24:00 resolves to midnight of the following day.
func (t TimeString) On(day time.Time) (time.Time, error) {
	minutes, err := t.parse()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, minutes, 0, 0, day.Location()), nil
}

// AddMinutes shifts the time of day. The result must stay within the same day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.parse()
	if err != nil {
		return "", err
	}
	next := current + minutes
	if next < 0 || next > minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes leaves the day", ErrInvalidTimeString, t, minutes)
	}
	return fromMinutes(next), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Unparseable values compare as midnight.
func (t TimeString) IsBefore(other TimeString) bool {
	a, _ := t.parse()
	b, _ := other.parse()
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, _ := t.parse()
	b, _ := other.parse()
	return a > b
}

func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) parse() (int, error) {
	s := string(t)
	if s == string(EndOfDay) {
		return minutesPerDay, nil
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func fromMinutes(minutes int) TimeString {
	if minutes == minutesPerDay {
		return EndOfDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}
