package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)))
}

func TestAvailabilityValidate(t *testing.T) {
	tests := []struct {
		name         string
		availability Availability
		wantErr      bool
	}{
		{
			name: "valid",
			availability: Availability{
				{Day: Monday, TimeSlots: []TimeRange{{StartTime: "09:00", EndTime: "17:00"}}},
				{Day: Friday, TimeSlots: []TimeRange{{StartTime: "18:00", EndTime: "24:00"}}},
			},
		},
		{
			name: "empty is valid",
		},
		{
			name: "unknown day",
			availability: Availability{
				{Day: "funday", TimeSlots: []TimeRange{{StartTime: "09:00", EndTime: "10:00"}}},
			},
			wantErr: true,
		},
		{
			name: "duplicate day",
			availability: Availability{
				{Day: Monday, TimeSlots: []TimeRange{{StartTime: "09:00", EndTime: "10:00"}}},
				{Day: Monday, TimeSlots: []TimeRange{{StartTime: "11:00", EndTime: "12:00"}}},
			},
			wantErr: true,
		},
		{
			name: "malformed time",
			availability: Availability{
				{Day: Monday, TimeSlots: []TimeRange{{StartTime: "9am", EndTime: "10:00"}}},
			},
			wantErr: true,
		},
		{
			name: "end equals start",
			availability: Availability{
				{Day: Monday, TimeSlots: []TimeRange{{StartTime: "10:00", EndTime: "10:00"}}},
			},
			wantErr: true,
		},
		{
			name: "starts at end of day",
			availability: Availability{
				{Day: Monday, TimeSlots: []TimeRange{{StartTime: "24:00", EndTime: "24:00"}}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.availability.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAvailability)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProductValidate(t *testing.T) {
	p := &Product{ID: "p1", Price: 999, Duration: 1}
	assert.NoError(t, p.Validate())

	p.Duration = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)

	p.Duration = 2
	p.Price = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
}

func TestProductHasGatewayPrice(t *testing.T) {
	p := &Product{ID: "p1"}
	assert.False(t, p.HasGatewayPrice())

	empty := ""
	p.PriceID = &empty
	assert.False(t, p.HasGatewayPrice())

	price := "price_123"
	p.PriceID = &price
	assert.True(t, p.HasGatewayPrice())
}
