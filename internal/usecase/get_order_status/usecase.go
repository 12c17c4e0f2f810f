package get_order_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orderRepo "github.com/m04kA/Zonomo-CartService/internal/infra/storage/order"
)

// UseCase use case для получения статуса оплаты заказа
// Фронтенд опрашивает его после редиректа со страницы оплаты.
type UseCase struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(orderRepo OrderRepository, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute выполняет use case получения статуса заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, fmt.Errorf("%w: orderID is required", ErrInvalidInput)
	}

	order, err := uc.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			uc.logger.Warn("GetOrderStatus: order id=%s not found", req.OrderID)
			return nil, ErrOrderNotFound
		}
		uc.logger.Error("GetOrderStatus: failed to get order id=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: failed to get order: %v", ErrInternal, err)
	}

	return &Response{
		OrderID: order.ID,
		IsPaid:  order.IsPaid,
		Total:   order.Total,
	}, nil
}
