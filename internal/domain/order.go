package domain

import "time"

// BookingDetail is one booked (product, date, slot) line as sent to checkout
type BookingDetail struct {
	ProductID         string `json:"productId"`
	SelectedDate      string `json:"selectedDate"`
	SelectedTimeSlot  string `json:"selectedTimeSlot"`
	SelectedTimeFrame string `json:"selectedTimeFrame"`
}

// Order is created unpaid before the checkout session and references the booked products
type Order struct {
	ID             string
	SessionID      string
	CustomerEmail  *string
	ProductIDs     []string
	BookingDetails []BookingDetail
	Subtotal       float64
	Fee            float64
	Total          float64
	Currency       string
	IsPaid         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
