package create_checkout_session

import (
	createCheckout "github.com/m04kA/Zonomo-CartService/internal/usecase/create_checkout"
)

// CreateCheckoutSessionRequest HTTP request model
// Тело запроса опционально.
type CreateCheckoutSessionRequest struct {
	CustomerEmail *string `json:"customerEmail,omitempty"`
}

// CheckoutSessionResponse HTTP response model
type CheckoutSessionResponse struct {
	URL      string  `json:"url"`
	OrderID  string  `json:"orderId"`
	Subtotal float64 `json:"subtotal"`
	Fee      float64 `json:"fee"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateCheckoutSessionRequest) ToUseCaseRequest(sessionID string) *createCheckout.Request {
	return &createCheckout.Request{
		SessionID:     sessionID,
		CustomerEmail: r.CustomerEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		URL:      resp.URL,
		OrderID:  resp.OrderID,
		Subtotal: resp.Subtotal,
		Fee:      resp.Fee,
		Total:    resp.Total,
		Currency: resp.Currency,
	}
}
