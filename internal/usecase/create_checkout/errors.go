package create_checkout

import "errors"

var (
	// ErrEmptyCart возвращается, когда корзина сессии пуста
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoPricedProducts возвращается, когда ни у одной услуги в корзине нет цены в платежном шлюзе
	ErrNoPricedProducts = errors.New("no products in cart can be paid")

	// ErrPaymentFailed возвращается, когда платежный шлюз не создал сессию
	ErrPaymentFailed = errors.New("payment session creation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
