package remove_cart_item

import (
	"github.com/m04kA/Zonomo-CartService/internal/service/carts/models"
)

// RemoveCartItemRequest HTTP request model, ключ позиции (product, date, slot)
type RemoveCartItemRequest struct {
	ProductID        string `json:"productId"`
	SelectedDate     string `json:"selectedDate"`
	SelectedTimeSlot string `json:"selectedTimeSlot"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RemoveCartItemRequest) ToServiceRequest(sessionID string) *models.RemoveItemRequest {
	return &models.RemoveItemRequest{
		SessionID:        sessionID,
		ProductID:        r.ProductID,
		SelectedDate:     r.SelectedDate,
		SelectedTimeSlot: r.SelectedTimeSlot,
	}
}
