package payment

// LineItem позиция оплаты по цене, заведенной в платежном шлюзе
type LineItem struct {
	PriceID  string
	Quantity int64
}

// SessionRequest запрос на создание checkout-сессии
type SessionRequest struct {
	OrderID       string
	CustomerEmail *string
	LineItems     []LineItem
	Fee           float64 // фиксированная комиссия в основных единицах валюты (1.0 = ₹1)
	Currency      string
	Metadata      map[string]string
}

// Session созданная checkout-сессия
type Session struct {
	ID  string
	URL string
}
