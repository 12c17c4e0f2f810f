package get_order_status

// Request модель запроса статуса заказа
type Request struct {
	OrderID string
}

// Response модель ответа со статусом оплаты
type Response struct {
	OrderID string
	IsPaid  bool
	Total   float64
}
