package add_cart_item

import (
	"context"

	"github.com/m04kA/Zonomo-CartService/internal/service/carts/models"
)

type CartService interface {
	AddItem(ctx context.Context, req *models.AddItemRequest) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
