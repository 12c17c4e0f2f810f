package create_checkout

import (
	"github.com/m04kA/Zonomo-CartService/internal/cart"
	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// CheckoutRequest содержимое запроса на оплату, собранное из корзины
type CheckoutRequest struct {
	ProductIDs     []string               // ID услуг в порядке корзины, повторы сохраняются
	BookingDetails []domain.BookingDetail // по одной записи на позицию корзины
	Subtotal       float64                // сумма цен позиций
	Fee            float64                // фиксированная комиссия
	Total          float64                // Subtotal + Fee
}

// Assemble собирает запрос на оплату только из текущего содержимого корзины
func Assemble(items []domain.CartItem, fee float64) CheckoutRequest {
	req := CheckoutRequest{
		ProductIDs:     make([]string, 0, len(items)),
		BookingDetails: make([]domain.BookingDetail, 0, len(items)),
		Fee:            fee,
	}

	for i := range items {
		req.ProductIDs = append(req.ProductIDs, items[i].Product.ID)
		req.BookingDetails = append(req.BookingDetails, domain.BookingDetail{
			ProductID:         items[i].Product.ID,
			SelectedDate:      items[i].SelectedDate,
			SelectedTimeSlot:  items[i].SelectedTimeSlot,
			SelectedTimeFrame: string(items[i].SelectedTimeFrame),
		})
	}

	req.Subtotal = cart.Subtotal(items)
	req.Total = req.Subtotal + fee

	return req
}

// distinctIDs возвращает уникальные ID в порядке первого появления
func distinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
