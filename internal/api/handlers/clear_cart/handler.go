package clear_cart

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

// Handle DELETE /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cart - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, carts.ErrInvalidInput):
			h.logger.Warn("DELETE /cart - Invalid session: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		default:
			h.logger.Error("DELETE /cart - Failed to clear cart: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart - Cart cleared: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
