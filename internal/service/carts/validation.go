package carts

import (
	"fmt"
	"strings"

	"github.com/m04kA/Zonomo-CartService/internal/service/carts/models"
)

const maxSessionIDLength = 128

// validateSessionID проверяет ID сессии
func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if len(sessionID) > maxSessionIDLength {
		return fmt.Errorf("%w: sessionID is too long", ErrInvalidInput)
	}
	return nil
}

// validateAddItemRequest валидирует запрос на добавление позиции
func validateAddItemRequest(req *models.AddItemRequest) error {
	if err := validateSessionID(req.SessionID); err != nil {
		return err
	}

	if strings.TrimSpace(req.ProductID) == "" {
		return fmt.Errorf("%w: productId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SelectedDate) == "" {
		return fmt.Errorf("%w: selectedDate is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SelectedTimeSlot) == "" {
		return fmt.Errorf("%w: selectedTimeSlot is required", ErrInvalidInput)
	}

	return nil
}

// validateRemoveItemRequest валидирует запрос на удаление позиции
func validateRemoveItemRequest(req *models.RemoveItemRequest) error {
	if err := validateSessionID(req.SessionID); err != nil {
		return err
	}

	if strings.TrimSpace(req.ProductID) == "" {
		return fmt.Errorf("%w: productId is required", ErrInvalidInput)
	}

	return nil
}
