package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProductID) == "" {
		return fmt.Errorf("%w: productID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DayPart != nil && !req.DayPart.IsValid() {
		return fmt.Errorf("%w: unknown day part %q", ErrInvalidInput, *req.DayPart)
	}

	return nil
}
