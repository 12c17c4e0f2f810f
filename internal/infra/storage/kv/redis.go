package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage хранилище корзин в Redis, одна строка на ключ
type RedisStorage struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStorage создает хранилище поверх клиента Redis
// ttl = 0 означает хранение без срока истечения.
func NewRedisStorage(client redis.UniversalClient, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: client,
		ttl:    ttl,
	}
}

// Get получает значение по ключу
func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - key=%s: %v", ErrExecQuery, key, err)
	}
	return value, true, nil
}

// Set сохраняет значение по ключу, продлевая срок жизни
func (s *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}
