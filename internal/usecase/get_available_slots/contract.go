package get_available_slots

import (
	"context"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// ProductRepository интерфейс каталога услуг
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Metrics интерфейс метрик генерации слотов
type Metrics interface {
	ObserveSlots(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
