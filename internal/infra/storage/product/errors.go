package product

import "errors"

var (
	// ErrProductNotFound возвращается, когда услуга не найдена
	ErrProductNotFound = errors.New("product.repository: product not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("product.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("product.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("product.repository: failed to scan row")

	// ErrDecodeAvailability возвращается, когда расписание в БД не удалось разобрать
	ErrDecodeAvailability = errors.New("product.repository: failed to decode availability")
)
