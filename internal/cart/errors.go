package cart

import "errors"

var (
	// ErrPersist возвращается, когда не удалось сохранить корзину; состояние в памяти не меняется
	ErrPersist = errors.New("cart: failed to persist state")

	// ErrHydrate возвращается, когда не удалось загрузить сохраненную корзину
	ErrHydrate = errors.New("cart: failed to hydrate state")

	// ErrCorruptedState возвращается, когда сохраненное состояние не удалось разобрать
	ErrCorruptedState = errors.New("cart: corrupted persisted state")

	// ErrUnsupportedVersion возвращается для сохраненного состояния неизвестной версии
	// Изменение формата требует явной миграции
	ErrUnsupportedVersion = errors.New("cart: unsupported persisted state version")
)
