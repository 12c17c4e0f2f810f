package create_checkout

// Config параметры оформления заказа
type Config struct {
	Fee      float64 // фиксированная комиссия в основных единицах валюты
	Currency string
}

// Request модель запроса на создание checkout-сессии
type Request struct {
	SessionID     string  // ID сессии корзины
	CustomerEmail *string // опционально, передается в платежный шлюз
}

// Response модель ответа с URL для редиректа на оплату
type Response struct {
	URL      string
	OrderID  string
	Subtotal float64
	Fee      float64
	Total    float64
	Currency string
}
