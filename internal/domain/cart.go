package domain

// CartItem is a pending booking selection queued for checkout
type CartItem struct {
	Product           Product `json:"product"`           // snapshot taken when the item was added
	SelectedDate      string  `json:"selectedDate"`      // "2025-10-15"
	SelectedTimeSlot  string  `json:"selectedTimeSlot"`  // "9:00 AM - 10:00 AM"
	SelectedTimeFrame DayPart `json:"selectedTimeFrame"` // day-part of the slot
}

// CartItemKey is the composite identity of a cart item
type CartItemKey struct {
	ProductID        string
	SelectedDate     string
	SelectedTimeSlot string
}

// Key returns the composite identity of the item
func (i *CartItem) Key() CartItemKey {
	return CartItemKey{
		ProductID:        i.Product.ID,
		SelectedDate:     i.SelectedDate,
		SelectedTimeSlot: i.SelectedTimeSlot,
	}
}

// Matches returns true if the item has exactly the given composite key
func (i *CartItem) Matches(key CartItemKey) bool {
	return i.Key() == key
}
