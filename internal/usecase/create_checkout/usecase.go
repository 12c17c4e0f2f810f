package create_checkout

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	"github.com/m04kA/Zonomo-CartService/internal/integrations/payment"
)

// UseCase use case для создания checkout-сессии по корзине
type UseCase struct {
	carts       CartReader
	productRepo ProductRepository
	orderRepo   OrderRepository
	gateway     PaymentGateway
	metrics     Metrics
	config      Config
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	carts CartReader,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	gateway PaymentGateway,
	metrics Metrics,
	config Config,
	logger Logger,
) *UseCase {
	if config.Currency == "" {
		config.Currency = domain.DefaultCurrency
	}

	return &UseCase{
		carts:       carts,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		metrics:     metrics,
		config:      config,
		logger:      logger,
	}
}

// Execute выполняет use case создания checkout-сессии
// Корзина не изменяется ни при успехе, ни при ошибке: очистка происходит после подтверждения оплаты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.metrics.ObserveCheckout(err) }()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckout: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateCheckout: session=%s", req.SessionID)

	// 2. Загружаем корзину
	items, err := uc.carts.Items(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to load cart for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}
	if len(items) == 0 {
		uc.logger.Warn("CreateCheckout: cart is empty for session=%s", req.SessionID)
		return nil, ErrEmptyCart
	}

	// 3. Собираем запрос только из содержимого корзины
	checkout := Assemble(items, uc.config.Fee)

	// 4. Получаем цены шлюза по уникальным ID услуг
	lineItems, err := uc.buildLineItems(ctx, checkout.ProductIDs)
	if err != nil {
		return nil, err
	}

	// 5. Создаем неоплаченный заказ
	order, err := uc.orderRepo.Create(ctx, &domain.Order{
		ID:             uuid.NewString(),
		SessionID:      req.SessionID,
		CustomerEmail:  req.CustomerEmail,
		ProductIDs:     checkout.ProductIDs,
		BookingDetails: checkout.BookingDetails,
		Subtotal:       checkout.Subtotal,
		Fee:            checkout.Fee,
		Total:          checkout.Total,
		Currency:       uc.config.Currency,
		IsPaid:         false,
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to create order for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
	}

	// 6. Создаем сессию в платежном шлюзе
	// Детали бронирования хранятся в заказе, в шлюз уходят только ссылки на него.
	session, err := uc.gateway.CreateCheckoutSession(ctx, &payment.SessionRequest{
		OrderID:       order.ID,
		CustomerEmail: req.CustomerEmail,
		LineItems:     lineItems,
		Fee:           checkout.Fee,
		Currency:      uc.config.Currency,
		Metadata: map[string]string{
			"sessionId": req.SessionID,
			"itemCount": strconv.Itoa(len(items)),
		},
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: payment session failed for order=%s: %v", order.ID, err)
		uc.rollbackOrder(ctx, order.ID)
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	uc.logger.Info("CreateCheckout: order=%s, items=%d, total=%.2f %s, payment_session=%s",
		order.ID, len(items), checkout.Total, uc.config.Currency, session.ID)

	return &Response{
		URL:      session.URL,
		OrderID:  order.ID,
		Subtotal: checkout.Subtotal,
		Fee:      checkout.Fee,
		Total:    checkout.Total,
		Currency: uc.config.Currency,
	}, nil
}

// buildLineItems строит позиции оплаты: одна позиция на каждый ID услуги корзины, повторы сохраняются
// Услуги без цены в шлюзе пропускаются.
func (uc *UseCase) buildLineItems(ctx context.Context, productIDs []string) ([]payment.LineItem, error) {
	products, err := uc.productRepo.GetByIDs(ctx, distinctIDs(productIDs))
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to get products: %v", err)
		return nil, fmt.Errorf("%w: failed to get products: %v", ErrInternal, err)
	}

	prices := make(map[string]string, len(products))
	for _, p := range products {
		if p.HasGatewayPrice() {
			prices[p.ID] = *p.PriceID
		}
	}

	lineItems := make([]payment.LineItem, 0, len(productIDs))
	for _, id := range productIDs {
		priceID, ok := prices[id]
		if !ok {
			uc.logger.Warn("CreateCheckout: product id=%s has no gateway price, skipped", id)
			continue
		}
		lineItems = append(lineItems, payment.LineItem{PriceID: priceID, Quantity: 1})
	}

	if len(lineItems) == 0 {
		return nil, ErrNoPricedProducts
	}

	return lineItems, nil
}

// rollbackOrder удаляет заказ, для которого не удалось создать платежную сессию
func (uc *UseCase) rollbackOrder(ctx context.Context, orderID string) {
	if err := uc.orderRepo.Delete(context.WithoutCancel(ctx), orderID); err != nil {
		uc.logger.Error("CreateCheckout: failed to delete order=%s after payment failure: %v", orderID, err)
	}
}
