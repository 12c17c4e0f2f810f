package domain

// Default configuration values
const (
	DefaultTransactionFee = 1.0   // flat fee added to every checkout, in major currency units
	DefaultCurrency       = "inr" // ISO 4217, lower case as the payment gateway expects
	DefaultCartStorageKey = "cart-storage"
)

// Business validation constants
const (
	MinDurationHours       = 1
	MaxDurationHours       = 24
	MaxTimeRangesPerDay    = 24
	MaxCartItems           = 50
	MaxCustomerEmailLength = 254
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	SlotLabelFormat = "3:04 PM"    // 9:00 AM
)
