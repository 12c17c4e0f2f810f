package remove_cart_item

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
	msgInvalidInput       = "productId обязателен"
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

// Handle DELETE /api/v1/cart/items
// Удаляет все позиции с ключом из тела запроса; отсутствующий ключ не ошибка.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cart/items - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req RemoveCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), req.ToServiceRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, carts.ErrInvalidInput):
			h.logger.Warn("DELETE /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /cart/items - Failed to remove item: session_id=%s, product_id=%s, error=%v",
				sessionID, req.ProductID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart/items - Items removed: session_id=%s, product_id=%s, items=%d",
		sessionID, req.ProductID, cart.Count)
	handlers.RespondJSON(w, http.StatusOK, cart)
}
