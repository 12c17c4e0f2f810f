package kv

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("kv.storage: failed to execute query")

	// ErrUnknownBackend возвращается для неподдерживаемого типа хранилища
	ErrUnknownBackend = errors.New("kv.storage: unknown backend")
)
