package create_checkout

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.CustomerEmail != nil && *req.CustomerEmail != "" {
		if len(*req.CustomerEmail) > domain.MaxCustomerEmailLength {
			return fmt.Errorf("%w: customer email is too long", ErrInvalidInput)
		}
		if _, err := mail.ParseAddress(*req.CustomerEmail); err != nil {
			return fmt.Errorf("%w: invalid customer email: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
