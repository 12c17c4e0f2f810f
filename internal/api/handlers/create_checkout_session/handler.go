package create_checkout_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/Zonomo-CartService/internal/api/handlers"
	"github.com/m04kA/Zonomo-CartService/internal/api/middleware"
	createCheckout "github.com/m04kA/Zonomo-CartService/internal/usecase/create_checkout"
)

const (
	msgMissingSessionID   = "отсутствует ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный email"
	msgEmptyCart          = "корзина пуста"
	msgNoPricedProducts   = "ни одну услугу в корзине нельзя оплатить"
	msgPaymentFailed      = "не удалось создать сессию оплаты, попробуйте позже"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/sessions
// Корзина не очищается: при ошибке оплаты пользователь может повторить попытку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout/sessions - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req CreateCheckoutSessionRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /checkout/sessions - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout/sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createCheckout.ErrEmptyCart):
			h.logger.Warn("POST /checkout/sessions - Empty cart: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, createCheckout.ErrNoPricedProducts):
			h.logger.Warn("POST /checkout/sessions - No priced products: session_id=%s", sessionID)
			handlers.RespondUnprocessable(w, msgNoPricedProducts)

		case errors.Is(err, createCheckout.ErrPaymentFailed):
			h.logger.Error("POST /checkout/sessions - Payment gateway failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgPaymentFailed)

		default:
			h.logger.Error("POST /checkout/sessions - Failed to create checkout: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/sessions - Checkout session created: session_id=%s, order_id=%s",
		sessionID, result.OrderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
