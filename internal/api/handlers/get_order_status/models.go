package get_order_status

import (
	getOrderStatus "github.com/m04kA/Zonomo-CartService/internal/usecase/get_order_status"
)

// OrderStatusResponse HTTP response model
type OrderStatusResponse struct {
	OrderID string  `json:"orderId"`
	IsPaid  bool    `json:"isPaid"`
	Total   float64 `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOrderStatus.Response) *OrderStatusResponse {
	return &OrderStatusResponse{
		OrderID: resp.OrderID,
		IsPaid:  resp.IsPaid,
		Total:   resp.Total,
	}
}
