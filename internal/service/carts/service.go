package carts

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/Zonomo-CartService/internal/cart"
	"github.com/m04kA/Zonomo-CartService/internal/domain"
	productRepo "github.com/m04kA/Zonomo-CartService/internal/infra/storage/product"
	"github.com/m04kA/Zonomo-CartService/internal/service/carts/models"
	"github.com/m04kA/Zonomo-CartService/internal/slots"
)

const sessionLockShards = 64

// Config параметры сервиса корзин
type Config struct {
	KeyPrefix string  // префикс ключа хранилища, ключ сессии: <prefix>:<sessionID>
	Fee       float64 // комиссия, показываемая в итогах корзины
	Currency  string
	MaxItems  int
	Location  *time.Location // часовой пояс дат и слотов, по умолчанию UTC
}

// Service сервис корзин, привязанных к сессии
// На каждый вызов корзина восстанавливается из хранилища; мутации одной сессии сериализуются.
type Service struct {
	storage      Storage
	productRepo  ProductRepository
	metrics      Metrics
	timeProvider TimeProvider
	config       Config
	logger       Logger

	locks [sessionLockShards]sync.Mutex
}

// NewService создает новый экземпляр сервиса корзин
func NewService(
	storage Storage,
	productRepo ProductRepository,
	metrics Metrics,
	config Config,
	logger Logger,
) *Service {
	if config.KeyPrefix == "" {
		config.KeyPrefix = domain.DefaultCartStorageKey
	}
	if config.Currency == "" {
		config.Currency = domain.DefaultCurrency
	}
	if config.MaxItems <= 0 {
		config.MaxItems = domain.MaxCartItems
	}
	if config.Location == nil {
		config.Location = time.UTC
	}

	return &Service{
		storage:      storage,
		productRepo:  productRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		config:       config,
		logger:       logger,
	}
}

// StorageKey возвращает ключ хранилища для сессии
func (s *Service) StorageKey(sessionID string) string {
	return s.config.KeyPrefix + ":" + sessionID
}

// Items возвращает позиции корзины сессии в порядке добавления
func (s *Service) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return store.Snapshot(), nil
}

// GetCart получает корзину сессии с итогами
func (s *Service) GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.response(store), nil
}

// AddItem добавляет услугу на выбранные дату и слот
// Снимок услуги берется из каталога, слот проверяется по расписанию, часть дня вычисляется по слоту.
func (s *Service) AddItem(ctx context.Context, req *models.AddItemRequest) (resp *models.CartResponse, err error) {
	defer func() { s.metrics.ObserveCartOperation("add", err) }()

	s.logger.Info("AddItem: session=%s, product=%s, date=%s, slot=%s",
		req.SessionID, req.ProductID, req.SelectedDate, req.SelectedTimeSlot)

	// 1. Валидация входных данных
	if err := validateAddItemRequest(req); err != nil {
		s.logger.Warn("AddItem: validation failed: %v", err)
		return nil, err
	}

	date, err := s.parseBookingDate(req.SelectedDate)
	if err != nil {
		s.logger.Warn("AddItem: invalid date=%s: %v", req.SelectedDate, err)
		return nil, err
	}

	// 2. Получаем снимок услуги из каталога
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("AddItem: product id=%s not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		s.logger.Error("AddItem: failed to get product id=%s: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: AddItem - product repository error: %v", ErrInternal, err)
	}

	if err := product.Validate(); err != nil {
		s.logger.Error("AddItem: product id=%s has invalid catalog data: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: AddItem - invalid product: %v", ErrInternal, err)
	}

	// 3. Проверяем, что слот действительно предлагается на эту дату
	slot, ok := slots.FindSlot(product.Availability, date, product.Duration, req.SelectedTimeSlot)
	if !ok {
		s.logger.Warn("AddItem: slot=%q not offered for product=%s on %s",
			req.SelectedTimeSlot, req.ProductID, req.SelectedDate)
		return nil, ErrSlotNotAvailable
	}

	frame, err := resolveDayPart(slot, req.SelectedTimeFrame)
	if err != nil {
		s.logger.Warn("AddItem: %v", err)
		return nil, err
	}

	// 4. Добавляем позицию
	unlock := s.lock(req.SessionID)
	defer unlock()

	store, err := s.open(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if store.Len() >= s.config.MaxItems {
		s.logger.Warn("AddItem: cart for session=%s already has %d items", req.SessionID, store.Len())
		return nil, fmt.Errorf("%w: at most %d items", ErrCartFull, s.config.MaxItems)
	}

	if err := store.AddItem(ctx, *product, req.SelectedDate, req.SelectedTimeSlot, frame); err != nil {
		s.logger.Error("AddItem: failed to persist cart for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: AddItem - %v", ErrInternal, err)
	}

	s.logger.Info("AddItem: cart for session=%s now has %d items", req.SessionID, store.Len())
	return s.response(store), nil
}

// RemoveItem удаляет все позиции с точно совпадающим ключом (product, date, slot)
// Отсутствующий ключ не является ошибкой.
func (s *Service) RemoveItem(ctx context.Context, req *models.RemoveItemRequest) (resp *models.CartResponse, err error) {
	defer func() { s.metrics.ObserveCartOperation("remove", err) }()

	if err := validateRemoveItemRequest(req); err != nil {
		s.logger.Warn("RemoveItem: validation failed: %v", err)
		return nil, err
	}

	unlock := s.lock(req.SessionID)
	defer unlock()

	store, err := s.open(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	removed, err := store.RemoveItem(ctx, req.ProductID, req.SelectedDate, req.SelectedTimeSlot)
	if err != nil {
		s.logger.Error("RemoveItem: failed to persist cart for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: RemoveItem - %v", ErrInternal, err)
	}

	s.logger.Info("RemoveItem: removed %d items for session=%s, product=%s", removed, req.SessionID, req.ProductID)

	resp = s.response(store)
	resp.Removed = &removed
	return resp, nil
}

// Clear очищает корзину сессии независимо от сохраненного состояния
func (s *Service) Clear(ctx context.Context, sessionID string) (err error) {
	defer func() { s.metrics.ObserveCartOperation("clear", err) }()

	if err := validateSessionID(sessionID); err != nil {
		return err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	// Сохраненное состояние не читается: очистка должна проходить и для поврежденной корзины
	repo := cart.NewStorageRepository(s.storage, s.StorageKey(sessionID))
	if err := cart.Reset(ctx, repo); err != nil {
		s.logger.Error("Clear: failed to persist cart for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Clear - %v", ErrInternal, err)
	}

	s.logger.Info("Clear: cart for session=%s cleared", sessionID)
	return nil
}

// open восстанавливает корзину сессии из хранилища
func (s *Service) open(ctx context.Context, sessionID string) (*cart.Store, error) {
	repo := cart.NewStorageRepository(s.storage, s.StorageKey(sessionID))

	store, err := cart.NewStore(ctx, repo)
	if err != nil {
		s.logger.Error("failed to hydrate cart key=%s: %v", repo.Key(), err)
		return nil, fmt.Errorf("%w: hydrate cart: %v", ErrInternal, err)
	}

	return store, nil
}

// lock блокирует мутации корзины сессии в пределах процесса
func (s *Service) lock(sessionID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	mu := &s.locks[h.Sum32()%sessionLockShards]
	mu.Lock()
	return mu.Unlock
}

func (s *Service) response(store *cart.Store) *models.CartResponse {
	return models.NewCartResponse(store.Snapshot(), store.Total(), s.config.Fee, s.config.Currency)
}

// parseBookingDate разбирает дату и проверяет, что она не в прошлом
func (s *Service) parseBookingDate(value string) (time.Time, error) {
	now := s.timeProvider.Now().In(s.config.Location)

	// Слоты выводятся в той же зоне, что и в списке доступных слотов, иначе метки расходятся
	date, err := time.ParseInLocation(domain.DateFormat, value, s.config.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected %s", ErrInvalidBookingDate, domain.DateFormat)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return time.Time{}, fmt.Errorf("%w: date %s is in the past", ErrInvalidBookingDate, value)
	}

	return date, nil
}

// resolveDayPart вычисляет часть дня слота и сверяет ее с переданной клиентом
func resolveDayPart(slot domain.Slot, requested *string) (domain.DayPart, error) {
	// слоты до 06:00 не относятся ни к одной части дня
	derived, _ := slots.Classify(slot)

	if requested == nil || strings.TrimSpace(*requested) == "" {
		return derived, nil
	}

	if domain.DayPart(*requested) != derived {
		return "", fmt.Errorf("%w: got %s, slot belongs to %q", ErrDayPartMismatch, *requested, derived)
	}

	return derived, nil
}
