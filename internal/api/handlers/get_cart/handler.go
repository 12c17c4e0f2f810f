package get_cart

import (
	"errors"
	"net/http"

	"github.com/m04kA/Zonomo-CartService/internal/api/handlers"
	"github.com/m04kA/Zonomo-CartService/internal/api/middleware"
	"github.com/m04kA/Zonomo-CartService/internal/service/carts"
)

const (
	msgMissingSessionID = "отсутствует ID сессии"
	msgInvalidSessionID = "некорректный ID сессии"
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

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем sessionID из контекста (через middleware Session)
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /cart - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	cart, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, carts.ErrInvalidInput):
			h.logger.Warn("GET /cart - Invalid session: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		default:
			h.logger.Error("GET /cart - Failed to get cart: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cart - Cart retrieved successfully: session_id=%s, items=%d", sessionID, cart.Count)
	handlers.RespondJSON(w, http.StatusOK, cart)
}
