package carts

import "errors"

var (
	// ErrProductNotFound возвращается, когда услуга не найдена в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidBookingDate возвращается при некорректной или прошедшей дате
	ErrInvalidBookingDate = errors.New("invalid booking date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот не предлагается на эту дату
	ErrSlotNotAvailable = errors.New("time slot is not available on this date")

	// ErrDayPartMismatch возвращается, когда переданная часть дня не совпадает с частью дня слота
	ErrDayPartMismatch = errors.New("time frame does not match the selected slot")

	// ErrCartFull возвращается при превышении максимального числа позиций
	ErrCartFull = errors.New("cart is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
