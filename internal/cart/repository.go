package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// StateVersion текущая версия сохраняемого формата корзины
const StateVersion = 0

// persistedState формат, в котором корзина лежит в хранилище:
// {"state":{"items":[...]},"version":0}
type persistedState struct {
	State struct {
		Items []domain.CartItem `json:"items"`
	} `json:"state"`
	Version int `json:"version"`
}

// StorageRepository репозиторий корзины поверх key-value хранилища
type StorageRepository struct {
	storage KeyValueStorage
	key     string
}

// NewStorageRepository создает репозиторий, хранящий корзину под указанным ключом
func NewStorageRepository(storage KeyValueStorage, key string) *StorageRepository {
	return &StorageRepository{
		storage: storage,
		key:     key,
	}
}

// Key возвращает ключ хранилища
func (r *StorageRepository) Key() string {
	return r.key
}

// Load загружает корзину из хранилища
func (r *StorageRepository) Load(ctx context.Context) ([]domain.CartItem, bool, error) {
	raw, found, err := r.storage.Get(ctx, r.key)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	items, err := Decode(raw)
	if err != nil {
		return nil, false, err
	}

	return items, true, nil
}

// Save сохраняет полный список позиций
func (r *StorageRepository) Save(ctx context.Context, items []domain.CartItem) error {
	raw, err := Encode(items)
	if err != nil {
		return err
	}
	return r.storage.Set(ctx, r.key, raw)
}

// Encode сериализует позиции в сохраняемый формат
func Encode(items []domain.CartItem) ([]byte, error) {
	var state persistedState
	state.Version = StateVersion
	state.State.Items = items
	if state.State.Items == nil {
		state.State.Items = make([]domain.CartItem, 0)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrCorruptedState, err)
	}
	return raw, nil
}

// Decode разбирает сохраненный формат
// Неизвестная версия не мигрируется автоматически.
func Decode(raw []byte) ([]domain.CartItem, error) {
	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCorruptedState, err)
	}

	if state.Version != StateVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, state.Version, StateVersion)
	}

	items := state.State.Items
	if items == nil {
		items = make([]domain.CartItem, 0)
	}
	return items, nil
}
