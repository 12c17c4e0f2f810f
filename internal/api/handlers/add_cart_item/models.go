package add_cart_item

import (
	"github.com/m04kA/Zonomo-CartService/internal/service/carts/models"
)

// AddCartItemRequest HTTP request model
type AddCartItemRequest struct {
	ProductID         string  `json:"productId"`
	SelectedDate      string  `json:"selectedDate"`                // "2025-10-15"
	SelectedTimeSlot  string  `json:"selectedTimeSlot"`            // "9:00 AM - 10:00 AM"
	SelectedTimeFrame *string `json:"selectedTimeFrame,omitempty"` // "MORNING"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddCartItemRequest) ToServiceRequest(sessionID string) *models.AddItemRequest {
	return &models.AddItemRequest{
		SessionID:         sessionID,
		ProductID:         r.ProductID,
		SelectedDate:      r.SelectedDate,
		SelectedTimeSlot:  r.SelectedTimeSlot,
		SelectedTimeFrame: r.SelectedTimeFrame,
	}
}
