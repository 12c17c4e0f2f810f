package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Zonomo-CartService/pkg/psqlbuilder"
)

const kvTable = "kv_storage"

// PostgresStorage хранилище корзин в таблице kv_storage (key text primary key, value jsonb, updated_at)
type PostgresStorage struct {
	db DBExecutor
}

// NewPostgresStorage создает хранилище поверх PostgreSQL
func NewPostgresStorage(db DBExecutor) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Get получает значение по ключу
func (s *PostgresStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - scan value: %v", ErrExecQuery, err)
	}

	return value, true, nil
}

// Set сохраняет значение по ключу (upsert)
func (s *PostgresStorage) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
