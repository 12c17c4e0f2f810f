package get_order_status

import (
	"context"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
