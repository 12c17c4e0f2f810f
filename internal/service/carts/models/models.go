package models

import (
	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// Request модели

// AddItemRequest запрос на добавление позиции в корзину
type AddItemRequest struct {
	SessionID         string  `json:"-"`
	ProductID         string  `json:"productId"`
	SelectedDate      string  `json:"selectedDate"`                // "2025-10-15"
	SelectedTimeSlot  string  `json:"selectedTimeSlot"`            // "9:00 AM - 10:00 AM"
	SelectedTimeFrame *string `json:"selectedTimeFrame,omitempty"` // опционально, вычисляется по слоту
}

// RemoveItemRequest запрос на удаление позиций с заданным ключом
type RemoveItemRequest struct {
	SessionID        string `json:"-"`
	ProductID        string `json:"productId"`
	SelectedDate     string `json:"selectedDate"`
	SelectedTimeSlot string `json:"selectedTimeSlot"`
}

// Response модели

// CartItemResponse позиция корзины
type CartItemResponse struct {
	ProductID         string  `json:"productId"`
	ProductName       string  `json:"productName"`
	Price             float64 `json:"price"`
	DurationHours     int     `json:"durationHours"`
	Category          string  `json:"category,omitempty"`
	SelectedDate      string  `json:"selectedDate"`
	SelectedTimeSlot  string  `json:"selectedTimeSlot"`
	SelectedTimeFrame string  `json:"selectedTimeFrame"`
}

// CartResponse содержимое корзины с итогами
type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Count    int                `json:"count"`
	Subtotal float64            `json:"subtotal"`
	Fee      float64            `json:"fee"`
	Total    float64            `json:"total"`
	Currency string             `json:"currency"`
	Removed  *int               `json:"removed,omitempty"` // только для удаления
}

// Методы конвертации

// FromDomainCartItem конвертирует domain модель в DTO
func FromDomainCartItem(item *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ProductID:         item.Product.ID,
		ProductName:       item.Product.Name,
		Price:             item.Product.Price,
		DurationHours:     item.Product.Duration,
		Category:          item.Product.Category,
		SelectedDate:      item.SelectedDate,
		SelectedTimeSlot:  item.SelectedTimeSlot,
		SelectedTimeFrame: string(item.SelectedTimeFrame),
	}
}

// NewCartResponse собирает ответ по позициям корзины
// Комиссия показывается только для непустой корзины.
func NewCartResponse(items []domain.CartItem, subtotal, fee float64, currency string) *CartResponse {
	resp := &CartResponse{
		Items:    make([]CartItemResponse, 0, len(items)),
		Count:    len(items),
		Subtotal: subtotal,
		Currency: currency,
	}
	for i := range items {
		resp.Items = append(resp.Items, FromDomainCartItem(&items[i]))
	}
	if len(items) > 0 {
		resp.Fee = fee
	}
	resp.Total = resp.Subtotal + resp.Fee
	return resp
}
