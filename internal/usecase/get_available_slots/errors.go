package get_available_slots

import "errors"

var (
	// ErrProductNotFound возвращается, когда услуга не найдена в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidAvailability возвращается, когда расписание услуги в каталоге некорректно
	ErrInvalidAvailability = errors.New("product availability is invalid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
