package kv

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := New(Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	s, err = New(Options{Backend: BackendRedis, Redis: client})
	require.NoError(t, err)
	assert.IsType(t, &RedisStorage{}, s)

	_, err = New(Options{Backend: BackendRedis})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = New(Options{Backend: BackendPostgres})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = New(Options{Backend: "mongo"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
