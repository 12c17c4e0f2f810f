package create_checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	"github.com/m04kA/Zonomo-CartService/internal/integrations/payment"
	"github.com/m04kA/Zonomo-CartService/pkg/logger"
	"github.com/m04kA/Zonomo-CartService/pkg/ptr"
)

type mockCarts struct{ mock.Mock }

func (m *mockCarts) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	args := m.Called(ctx, sessionID)
	items, _ := args.Get(0).([]domain.CartItem)
	return items, args.Error(1)
}

type mockProducts struct{ mock.Mock }

func (m *mockProducts) GetByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*domain.Product)
	return products, args.Error(1)
}

type mockOrders struct{ mock.Mock }

func (m *mockOrders) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, order)
	if args.Error(0) != nil {
		return nil, args.Error(0)
	}
	return order, nil
}

func (m *mockOrders) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	args := m.Called(ctx, req)
	session, _ := args.Get(0).(*payment.Session)
	return session, args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) ObserveCheckout(err error) {
	m.Called(err)
}

type fixture struct {
	carts    *mockCarts
	products *mockProducts
	orders   *mockOrders
	gateway  *mockGateway
	metrics  *mockMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		carts:    &mockCarts{},
		products: &mockProducts{},
		orders:   &mockOrders{},
		gateway:  &mockGateway{},
		metrics:  &mockMetrics{},
	}
	f.metrics.On("ObserveCheckout", mock.Anything).Return()
	f.uc = NewUseCase(f.carts, f.products, f.orders, f.gateway, f.metrics,
		Config{Fee: 1.0, Currency: "inr"}, logger.NewNop())
	return f
}

func pricedProduct(id string, price float64, priceID string) *domain.Product {
	p := &domain.Product{ID: id, Name: id, Price: price, Duration: 1}
	if priceID != "" {
		p.PriceID = ptr.Ptr(priceID)
	}
	return p
}

func twoItemCart() []domain.CartItem {
	return []domain.CartItem{
		{
			Product:           *pricedProduct("svc-a", 1200, "price_a"),
			SelectedDate:      "2025-10-15",
			SelectedTimeSlot:  "9:00 AM - 10:00 AM",
			SelectedTimeFrame: domain.DayPartMorning,
		},
		{
			Product:           *pricedProduct("svc-b", 1500, "price_b"),
			SelectedDate:      "2025-10-15",
			SelectedTimeSlot:  "4:00 PM - 5:00 PM",
			SelectedTimeFrame: domain.DayPartEvening,
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture()
	email := "user@example.com"

	f.carts.On("Items", mock.Anything, "sess-1").Return(twoItemCart(), nil)
	f.products.On("GetByIDs", mock.Anything, []string{"svc-a", "svc-b"}).Return([]*domain.Product{
		pricedProduct("svc-b", 1500, "price_b"),
		pricedProduct("svc-a", 1200, "price_a"),
	}, nil)

	var created *domain.Order
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Order) }).
		Return(nil)

	var sent *payment.SessionRequest
	f.gateway.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("*payment.SessionRequest")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*payment.SessionRequest) }).
		Return(&payment.Session{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1", CustomerEmail: &email})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example/cs_1", resp.URL)
	assert.InDelta(t, 2700.0, resp.Subtotal, 1e-9)
	assert.InDelta(t, 2701.0, resp.Total, 1e-9)
	assert.Equal(t, "inr", resp.Currency)

	require.NotNil(t, created)
	assert.Equal(t, resp.OrderID, created.ID)
	assert.False(t, created.IsPaid)
	assert.Equal(t, []string{"svc-a", "svc-b"}, created.ProductIDs)
	assert.Len(t, created.BookingDetails, 2)

	require.NotNil(t, sent)
	assert.Equal(t, created.ID, sent.OrderID)
	assert.Equal(t, []payment.LineItem{
		{PriceID: "price_a", Quantity: 1},
		{PriceID: "price_b", Quantity: 1},
	}, sent.LineItems)
	assert.InDelta(t, 1.0, sent.Fee, 1e-9)

	assert.Equal(t, map[string]string{"sessionId": "sess-1", "itemCount": "2"}, sent.Metadata)

	f.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.metrics.AssertCalled(t, "ObserveCheckout", nil)
}

func TestUseCase_Execute_RepeatedProductsAndUnpriced(t *testing.T) {
	f := newFixture()

	items := twoItemCart()
	items = append(items, items[0])
	items = append(items, domain.CartItem{
		Product:          *pricedProduct("svc-free", 300, ""),
		SelectedDate:     "2025-10-15",
		SelectedTimeSlot: "1:00 PM - 2:00 PM",
	})

	f.carts.On("Items", mock.Anything, "sess-1").Return(items, nil)
	f.products.On("GetByIDs", mock.Anything, []string{"svc-a", "svc-b", "svc-free"}).Return([]*domain.Product{
		pricedProduct("svc-a", 1200, "price_a"),
		pricedProduct("svc-b", 1500, "price_b"),
		pricedProduct("svc-free", 300, ""),
	}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	var sent *payment.SessionRequest
	f.gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*payment.SessionRequest) }).
		Return(&payment.Session{ID: "cs", URL: "https://checkout.example/cs"}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.Equal(t, []payment.LineItem{
		{PriceID: "price_a", Quantity: 1},
		{PriceID: "price_b", Quantity: 1},
		{PriceID: "price_a", Quantity: 1},
	}, sent.LineItems)
}

func TestUseCase_Execute_FullCartFitsGatewayMetadata(t *testing.T) {
	f := newFixture()

	items := make([]domain.CartItem, 0, domain.MaxCartItems)
	for i := 0; i < domain.MaxCartItems; i++ {
		items = append(items, domain.CartItem{
			Product:           *pricedProduct(fmt.Sprintf("svc-%02d", i%5), 1200, fmt.Sprintf("price_%02d", i%5)),
			SelectedDate:      "2025-10-15",
			SelectedTimeSlot:  "9:00 AM - 10:00 AM",
			SelectedTimeFrame: domain.DayPartMorning,
		})
	}

	f.carts.On("Items", mock.Anything, "sess-1").Return(items, nil)
	f.products.On("GetByIDs", mock.Anything, mock.Anything).Return([]*domain.Product{
		pricedProduct("svc-00", 1200, "price_00"),
		pricedProduct("svc-01", 1200, "price_01"),
		pricedProduct("svc-02", 1200, "price_02"),
		pricedProduct("svc-03", 1200, "price_03"),
		pricedProduct("svc-04", 1200, "price_04"),
	}, nil)

	var created *domain.Order
	f.orders.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Order) }).
		Return(nil)

	var sent *payment.SessionRequest
	f.gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*payment.SessionRequest) }).
		Return(&payment.Session{ID: "cs", URL: "https://checkout.example/cs"}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Len(t, sent.LineItems, domain.MaxCartItems)
	assert.LessOrEqual(t, len(sent.Metadata)+1, payment.MaxMetadataKeys)
	for k, v := range sent.Metadata {
		assert.LessOrEqual(t, len(k), payment.MaxMetadataKeyLength, k)
		assert.LessOrEqual(t, len(v), payment.MaxMetadataValueLength, k)
	}

	// детали бронирования целиком остаются в заказе
	require.NotNil(t, created)
	assert.Len(t, created.BookingDetails, domain.MaxCartItems)
}

func TestUseCase_Execute_PaymentFailureRollsBackOrder(t *testing.T) {
	f := newFixture()

	f.carts.On("Items", mock.Anything, "sess-1").Return(twoItemCart(), nil)
	f.products.On("GetByIDs", mock.Anything, mock.Anything).Return([]*domain.Product{
		pricedProduct("svc-a", 1200, "price_a"),
		pricedProduct("svc-b", 1500, "price_b"),
	}, nil)

	var created *domain.Order
	f.orders.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Order) }).
		Return(nil)
	f.orders.On("Delete", mock.Anything, mock.Anything).Return(nil)
	f.gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, payment.ErrGateway)

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPaymentFailed)
	require.NotNil(t, created)
	f.orders.AssertCalled(t, "Delete", mock.Anything, created.ID)
	f.metrics.AssertCalled(t, "ObserveCheckout", err)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name:    "missing session",
			req:     &Request{},
			setup:   func(*fixture) {},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid email",
			req:     &Request{SessionID: "sess-1", CustomerEmail: ptr.Ptr("not-an-email")},
			setup:   func(*fixture) {},
			wantErr: ErrInvalidInput,
		},
		{
			name: "empty cart",
			req:  &Request{SessionID: "sess-1"},
			setup: func(f *fixture) {
				f.carts.On("Items", mock.Anything, "sess-1").Return([]domain.CartItem{}, nil)
			},
			wantErr: ErrEmptyCart,
		},
		{
			name: "cart storage failure",
			req:  &Request{SessionID: "sess-1"},
			setup: func(f *fixture) {
				f.carts.On("Items", mock.Anything, "sess-1").Return(nil, errors.New("redis down"))
			},
			wantErr: ErrInternal,
		},
		{
			name: "no priced products",
			req:  &Request{SessionID: "sess-1"},
			setup: func(f *fixture) {
				f.carts.On("Items", mock.Anything, "sess-1").Return(twoItemCart(), nil)
				f.products.On("GetByIDs", mock.Anything, mock.Anything).Return([]*domain.Product{
					pricedProduct("svc-a", 1200, ""),
				}, nil)
			},
			wantErr: ErrNoPricedProducts,
		},
		{
			name: "order creation failure",
			req:  &Request{SessionID: "sess-1"},
			setup: func(f *fixture) {
				f.carts.On("Items", mock.Anything, "sess-1").Return(twoItemCart(), nil)
				f.products.On("GetByIDs", mock.Anything, mock.Anything).Return([]*domain.Product{
					pricedProduct("svc-a", 1200, "price_a"),
				}, nil)
				f.orders.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			resp, err := f.uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			f.gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
		})
	}
}
