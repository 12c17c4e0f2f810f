package payment

import "errors"

var (
	// ErrInvalidRequest возвращается при некорректном запросе на создание сессии
	ErrInvalidRequest = errors.New("payment client: invalid checkout request")

	// ErrGateway возвращается, когда платежный шлюз отклонил запрос или недоступен
	ErrGateway = errors.New("payment client: gateway error")

	// ErrInvalidResponse возвращается, когда шлюз не вернул URL сессии
	ErrInvalidResponse = errors.New("payment client: invalid response")
)
