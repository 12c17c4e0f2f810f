package create_checkout

import (
	"context"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	"github.com/m04kA/Zonomo-CartService/internal/integrations/payment"
)

// CartReader чтение корзины сессии
type CartReader interface {
	Items(ctx context.Context, sessionID string) ([]domain.CartItem, error)
}

// ProductRepository интерфейс каталога услуг
type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req *payment.SessionRequest) (*payment.Session, error)
}

// Metrics интерфейс метрик оформления заказа
type Metrics interface {
	ObserveCheckout(err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
