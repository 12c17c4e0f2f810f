package carts

import (
	"context"
	"time"

	"github.com/m04kA/Zonomo-CartService/internal/cart"
	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// ProductRepository интерфейс каталога услуг
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Storage key-value хранилище корзин (redis, postgres, memory)
type Storage = cart.KeyValueStorage

// Metrics интерфейс метрик операций с корзиной
type Metrics interface {
	ObserveCartOperation(operation string, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
