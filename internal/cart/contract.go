package cart

import (
	"context"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// Repository хранилище состояния корзины
// Load возвращает found=false, если состояние еще ни разу не сохранялось
type Repository interface {
	Load(ctx context.Context) (items []domain.CartItem, found bool, err error)
	Save(ctx context.Context, items []domain.CartItem) error
}

// KeyValueStorage долговременное key-value хранилище, один JSON blob на ключ
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
