package payment

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const feeLineName = "Transaction Fee"

// Ограничения Stripe на metadata
const (
	MaxMetadataKeys        = 50
	MaxMetadataKeyLength   = 40
	MaxMetadataValueLength = 500
)

// SessionCreator создание checkout-сессий (checkout/session.Client из stripe-go)
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Client клиент платежного шлюза Stripe
type Client struct {
	sessions   SessionCreator
	successURL string
	cancelURL  string
	log        Logger
}

// NewClient создает клиента Stripe с секретным ключом
// successURL может содержать {orderId}, он будет заменен на ID заказа.
func NewClient(secretKey, successURL, cancelURL string, log Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return NewClientWithCreator(api.CheckoutSessions, successURL, cancelURL, log)
}

// NewClientWithCreator создает клиента поверх произвольной реализации SessionCreator
func NewClientWithCreator(sessions SessionCreator, successURL, cancelURL string, log Logger) *Client {
	return &Client{
		sessions:   sessions,
		successURL: successURL,
		cancelURL:  cancelURL,
		log:        log,
	}
}

// CreateCheckoutSession создает hosted checkout-сессию и возвращает URL для редиректа
// Каждая позиция идет отдельной строкой, комиссия добавляется последней строкой с фиксированным количеством.
func (c *Client) CreateCheckoutSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("%w: no line items", ErrInvalidRequest)
	}
	if req.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrInvalidRequest)
	}
	if err := validateMetadata(req.Metadata); err != nil {
		return nil, err
	}

	params := c.buildParams(req)
	params.Context = ctx

	c.log.Info("Creating checkout session for order_id=%s, line_items=%d", req.OrderID, len(params.LineItems))

	s, err := c.sessions.New(params)
	if err != nil {
		c.log.Error("Checkout session creation failed for order_id=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if s == nil || s.URL == "" {
		return nil, fmt.Errorf("%w: empty session url", ErrInvalidResponse)
	}

	c.log.Info("Checkout session id=%s created for order_id=%s", s.ID, req.OrderID)
	return &Session{ID: s.ID, URL: s.URL}, nil
}

// buildParams собирает параметры запроса к Stripe
func (c *Client) buildParams(req *SessionRequest) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems)+1)
	for _, item := range req.LineItems {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(quantity),
		})
	}

	if req.Fee > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(ToMinorUnits(req.Fee)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(feeLineName),
				},
			},
			Quantity: stripe.Int64(1),
			AdjustableQuantity: &stripe.CheckoutSessionLineItemAdjustableQuantityParams{
				Enabled: stripe.Bool(false),
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL:         stripe.String(expandOrderID(c.successURL, req.OrderID)),
		CancelURL:          stripe.String(c.cancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		Currency:           stripe.String(req.Currency),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"orderId": req.OrderID},
		},
	}

	if req.CustomerEmail != nil && *req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(*req.CustomerEmail)
	}

	params.AddMetadata("orderId", req.OrderID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	return params
}

// validateMetadata проверяет metadata до отправки, иначе шлюз отклонит весь запрос
// Ключ orderId добавляется клиентом и учитывается в лимите ключей.
func validateMetadata(metadata map[string]string) error {
	if len(metadata)+1 > MaxMetadataKeys {
		return fmt.Errorf("%w: at most %d metadata keys", ErrInvalidRequest, MaxMetadataKeys)
	}
	for k, v := range metadata {
		if len(k) > MaxMetadataKeyLength {
			return fmt.Errorf("%w: metadata key %q is too long", ErrInvalidRequest, k)
		}
		if len(v) > MaxMetadataValueLength {
			return fmt.Errorf("%w: metadata value for %q exceeds %d characters", ErrInvalidRequest, k, MaxMetadataValueLength)
		}
	}
	return nil
}

// ToMinorUnits переводит сумму в минимальные единицы валюты (пайсы, центы)
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// expandOrderID подставляет ID заказа в шаблон URL
func expandOrderID(template, orderID string) string {
	return strings.ReplaceAll(template, "{orderId}", url.QueryEscape(orderID))
}
