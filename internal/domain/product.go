package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Zonomo-CartService/pkg/types"
)

var (
	// ErrInvalidAvailability is returned when a weekly schedule is malformed
	ErrInvalidAvailability = errors.New("invalid availability")

	// ErrInvalidProduct is returned when a catalog record breaks the booking invariants
	ErrInvalidProduct = errors.New("invalid product")
)

// Weekday is a lower-case English weekday name as stored in the catalog
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekdayOf returns the catalog weekday name of the given date
func WeekdayOf(date time.Time) Weekday {
	return Weekday(strings.ToLower(date.Weekday().String()))
}

// IsValid returns true if the weekday is one of monday..sunday
func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// TimeRange is a half-open [StartTime, EndTime) window within one day
type TimeRange struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// DayAvailability lists the bookable windows for one weekday
type DayAvailability struct {
	Day       Weekday     `json:"day"`
	TimeSlots []TimeRange `json:"timeSlots"`
}

// Availability is the recurring weekly schedule of a service
type Availability []DayAvailability

// ForDay returns the entry for the given weekday, if any
func (a Availability) ForDay(day Weekday) (DayAvailability, bool) {
	for _, entry := range a {
		if entry.Day == day {
			return entry, true
		}
	}
	return DayAvailability{}, false
}

// Validate checks the preconditions the slot deriver relies on:
// known weekdays, at most one entry per weekday, well-formed HH:MM values
// and EndTime strictly after StartTime.
func (a Availability) Validate() error {
	seen := make(map[Weekday]bool, len(a))

	for _, entry := range a {
		if !entry.Day.IsValid() {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidAvailability, entry.Day)
		}
		if seen[entry.Day] {
			return fmt.Errorf("%w: duplicate entry for %s", ErrInvalidAvailability, entry.Day)
		}
		seen[entry.Day] = true

		if len(entry.TimeSlots) > MaxTimeRangesPerDay {
			return fmt.Errorf("%w: too many time ranges for %s", ErrInvalidAvailability, entry.Day)
		}

		for _, r := range entry.TimeSlots {
			if r.StartTime == types.EndOfDay {
				return fmt.Errorf("%w: %s range cannot start at %s", ErrInvalidAvailability, entry.Day, r.StartTime)
			}
			if err := r.StartTime.Validate(); err != nil {
				return fmt.Errorf("%w: %s start: %v", ErrInvalidAvailability, entry.Day, err)
			}
			if err := r.EndTime.Validate(); err != nil {
				return fmt.Errorf("%w: %s end: %v", ErrInvalidAvailability, entry.Day, err)
			}
			if !r.EndTime.IsAfter(r.StartTime) {
				return fmt.Errorf("%w: %s range %s-%s ends before it starts",
					ErrInvalidAvailability, entry.Day, r.StartTime, r.EndTime)
			}
		}
	}

	return nil
}

// Product is a bookable service from the catalog.
// The cart keeps a full copy of it, so JSON tags are part of the persisted format.
type Product struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Price           float64      `json:"price"`
	Duration        int          `json:"duration"` // hours, also the slot length
	Category        string       `json:"category,omitempty"`
	ServiceLocation string       `json:"serviceLocation,omitempty"`
	ServiceType     string       `json:"serviceType,omitempty"`
	Availability    Availability `json:"availability"`
	PriceID         *string      `json:"priceId,omitempty"`  // payment gateway price
	StripeID        *string      `json:"stripeId,omitempty"` // payment gateway product
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// HasGatewayPrice returns true if the product can be charged through the payment gateway
func (p *Product) HasGatewayPrice() bool {
	return p.PriceID != nil && *p.PriceID != ""
}

// Validate checks the catalog invariants the booking flow depends on
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty product id", ErrInvalidProduct)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	}
	if p.Duration < MinDurationHours || p.Duration > MaxDurationHours {
		return fmt.Errorf("%w: duration %dh out of range", ErrInvalidProduct, p.Duration)
	}
	return p.Availability.Validate()
}
