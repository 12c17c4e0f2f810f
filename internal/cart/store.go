package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// Store корзина одной сессии
// Каждая мутация синхронно сохраняет полный список позиций до возврата из метода.
// Если сохранение не удалось, состояние в памяти остается прежним.
type Store struct {
	mu    sync.Mutex
	repo  Repository
	items []domain.CartItem
}

// NewStore создает корзину и восстанавливает ее из репозитория
// Если сохраненного состояния нет, корзина пустая.
func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	items, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHydrate, err)
	}
	if !found || items == nil {
		items = make([]domain.CartItem, 0)
	}

	return &Store{
		repo:  repo,
		items: items,
	}, nil
}

// AddItem добавляет позицию в конец корзины
// Позиции с одинаковым ключом (product, date, slot) не объединяются - каждая будет отдельной строкой в оплате.
func (s *Store) AddItem(
	ctx context.Context,
	product domain.Product,
	selectedDate string,
	selectedTimeSlot string,
	selectedTimeFrame domain.DayPart,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.CartItem, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, domain.CartItem{
		Product:           product,
		SelectedDate:      selectedDate,
		SelectedTimeSlot:  selectedTimeSlot,
		SelectedTimeFrame: selectedTimeFrame,
	})

	return s.commit(ctx, next)
}

// RemoveItem удаляет все позиции с точно совпадающим ключом
// Удаление отсутствующего ключа ничего не делает и не является ошибкой.
func (s *Store) RemoveItem(ctx context.Context, productID, selectedDate, selectedTimeSlot string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.CartItemKey{
		ProductID:        productID,
		SelectedDate:     selectedDate,
		SelectedTimeSlot: selectedTimeSlot,
	}

	next := make([]domain.CartItem, 0, len(s.items))
	for i := range s.items {
		if !s.items[i].Matches(key) {
			next = append(next, s.items[i])
		}
	}

	removed := len(s.items) - len(next)
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}

	return removed, nil
}

// Clear очищает корзину
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, make([]domain.CartItem, 0))
}

// Reset сохраняет пустую корзину, не читая текущее состояние
// Работает и для поврежденного или неизвестного по версии состояния.
func Reset(ctx context.Context, repo Repository) error {
	if err := repo.Save(ctx, make([]domain.CartItem, 0)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Snapshot возвращает копию текущих позиций в порядке добавления
func (s *Store) Snapshot() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Len возвращает количество позиций
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Total возвращает сумму цен всех позиций (без комиссии)
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Subtotal(s.items)
}

// Subtotal суммирует product.price по позициям
func Subtotal(items []domain.CartItem) float64 {
	total := 0.0
	for i := range items {
		total += items[i].Product.Price
	}
	return total
}

// commit сохраняет новое состояние и только после успеха подменяет его в памяти
func (s *Store) commit(ctx context.Context, next []domain.CartItem) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	s.items = next
	return nil
}
