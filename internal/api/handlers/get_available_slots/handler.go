package get_available_slots

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Zonomo-CartService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Zonomo-CartService/internal/usecase/get_available_slots"
)

const (
	msgMissingProductID    = "ID услуги обязателен"
	msgMissingDate         = "дата обязательна"
	msgInvalidQuery        = "некорректные параметры: ожидается date=YYYY-MM-DD и dayPart=MORNING|AFTERNOON|EVENING"
	msgProductNotFound     = "услуга не найдена"
	msgInvalidAvailability = "расписание услуги некорректно"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/products/{productId}/available-slots
// Query params: date (required, YYYY-MM-DD), dayPart (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(mux.Vars(r)["productId"])
	if productID == "" {
		h.logger.Warn("GET /products/{id}/available-slots - Missing product ID")
		handlers.RespondBadRequest(w, msgMissingProductID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /products/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(productID, dateStr, r.URL.Query().Get("dayPart"), h.location)
	if err != nil {
		h.logger.Warn("GET /products/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getAvailableSlots.ErrProductNotFound):
			h.logger.Warn("GET /products/{id}/available-slots - Product not found: product_id=%s", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidAvailability):
			h.logger.Error("GET /products/{id}/available-slots - Invalid availability: product_id=%s, error=%v",
				productID, err)
			handlers.RespondUnprocessable(w, msgInvalidAvailability)

		default:
			h.logger.Error("GET /products/{id}/available-slots - Failed to get slots: product_id=%s, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /products/{id}/available-slots - Slots retrieved successfully: product_id=%s, slots_count=%d",
		productID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
