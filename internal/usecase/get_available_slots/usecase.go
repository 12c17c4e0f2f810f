package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	productRepo "github.com/m04kA/Zonomo-CartService/internal/infra/storage/product"
	"github.com/m04kA/Zonomo-CartService/internal/slots"
)

// UseCase use case для получения доступных слотов услуги на дату
type UseCase struct {
	productRepo ProductRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	productRepo ProductRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Пустой список слотов - нормальный ответ (услуга не оказывается в этот день недели).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: product=%s, date=%s", req.ProductID, req.Date.Format(domain.DateFormat))

	// 2. Получаем услугу из каталога
	product, err := uc.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			uc.logger.Warn("GetAvailableSlots: product id=%s not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get product id=%s: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// 3. Расписание из каталога проверяется до генерации слотов
	if err := product.Validate(); err != nil {
		uc.logger.Error("GetAvailableSlots: product id=%s has invalid data: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAvailability, err)
	}

	// 4. Генерируем слоты и считаем их по частям дня
	derived := slots.SlotsForDate(product.Availability, req.Date, product.Duration)
	counts := slots.DayPartCounts(product.Availability, req.Date, product.Duration)

	result := make([]Slot, 0, len(derived))
	for _, s := range derived {
		part, _ := slots.Classify(s)
		if req.DayPart != nil && part != *req.DayPart {
			continue
		}
		result = append(result, Slot{
			Start:   s.Start,
			End:     s.End,
			Label:   s.Label(),
			DayPart: part,
		})
	}

	uc.metrics.ObserveSlots(len(derived))

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d after filter) for product=%s, date=%s",
		len(derived), len(result), req.ProductID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		ProductID:     product.ID,
		DurationHours: product.Duration,
		Counts:        counts,
		Slots:         result,
	}, nil
}
