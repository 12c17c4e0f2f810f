package remove_cart_item

import (
	"context"

	"github.com/m04kA/Zonomo-CartService/internal/service/carts/models"
)

type CartService interface {
	RemoveItem(ctx context.Context, req *models.RemoveItemRequest) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
