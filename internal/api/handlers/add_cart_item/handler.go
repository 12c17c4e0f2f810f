package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/Zonomo-CartService/internal/api/handlers"
	"github.com/m04kA/Zonomo-CartService/internal/api/middleware"
	"github.com/m04kA/Zonomo-CartService/internal/service/carts"
)

const (
	msgMissingSessionID   = "отсутствует ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "обязательны productId, selectedDate и selectedTimeSlot"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD не в прошлом"
	msgProductNotFound    = "услуга не найдена"
	msgSlotNotAvailable   = "выбранное время недоступно на эту дату"
	msgDayPartMismatch    = "часть дня не соответствует выбранному времени"
	msgCartFull           = "в корзине слишком много позиций"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /cart/items - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	// Декодируем body
	var req AddCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cart, err := h.service.AddItem(r.Context(), req.ToServiceRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, carts.ErrInvalidInput):
			h.logger.Warn("POST /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, carts.ErrInvalidBookingDate):
			h.logger.Warn("POST /cart/items - Invalid date: session_id=%s, date=%s", sessionID, req.SelectedDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, carts.ErrProductNotFound):
			h.logger.Warn("POST /cart/items - Product not found: product_id=%s", req.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, carts.ErrSlotNotAvailable):
			h.logger.Warn("POST /cart/items - Slot not available: product_id=%s, date=%s, slot=%s",
				req.ProductID, req.SelectedDate, req.SelectedTimeSlot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, carts.ErrDayPartMismatch):
			h.logger.Warn("POST /cart/items - Day part mismatch: %v", err)
			handlers.RespondBadRequest(w, msgDayPartMismatch)

		case errors.Is(err, carts.ErrCartFull):
			h.logger.Warn("POST /cart/items - Cart is full: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgCartFull)

		default:
			h.logger.Error("POST /cart/items - Failed to add item: session_id=%s, product_id=%s, error=%v",
				sessionID, req.ProductID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Item added successfully: session_id=%s, product_id=%s, items=%d",
		sessionID, req.ProductID, cart.Count)
	handlers.RespondJSON(w, http.StatusCreated, cart)
}
