package get_order_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Zonomo-CartService/internal/api/handlers"
	getOrderStatus "github.com/m04kA/Zonomo-CartService/internal/usecase/get_order_status"
)

const (
	msgInvalidOrderID = "некорректный ID заказа"
	msgNotFound       = "заказ не найден"
)

type Handler struct {
	useCase GetOrderStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetOrderStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	result, err := h.useCase.Execute(r.Context(), &getOrderStatus.Request{OrderID: orderID})
	if err != nil {
		switch {
		case errors.Is(err, getOrderStatus.ErrInvalidInput):
			h.logger.Warn("GET /orders/{id}/status - Invalid order ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		case errors.Is(err, getOrderStatus.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{id}/status - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /orders/{id}/status - Failed to get order: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
