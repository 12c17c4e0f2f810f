package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Поддерживаемые backend-ы
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Storage key-value хранилище одного JSON значения на ключ
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Options зависимости для создания хранилища
type Options struct {
	Backend string
	Redis   redis.UniversalClient // для BackendRedis
	DB      DBExecutor            // для BackendPostgres
	TTL     time.Duration         // для BackendRedis
}

// New создает хранилище по имени backend-а
func New(opts Options) (Storage, error) {
	switch opts.Backend {
	case BackendRedis:
		if opts.Redis == nil {
			return nil, fmt.Errorf("%w: redis client is not configured", ErrUnknownBackend)
		}
		return NewRedisStorage(opts.Redis, opts.TTL), nil

	case BackendPostgres:
		if opts.DB == nil {
			return nil, fmt.Errorf("%w: database is not configured", ErrUnknownBackend)
		}
		return NewPostgresStorage(opts.DB), nil

	case BackendMemory:
		return NewMemoryStorage(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
