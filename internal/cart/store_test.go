package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// memoryStorage key-value хранилище для тестов с возможностью сломать запись
type memoryStorage struct {
	mu      sync.Mutex
	data    map[string][]byte
	failSet error
	failGet error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{data: make(map[string][]byte)}
}

func (m *memoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, false, m.failGet
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = value
	return nil
}

func product(id string, price float64) domain.Product {
	priceID := "price_" + id
	return domain.Product{
		ID:       id,
		Name:     "Service " + id,
		Price:    price,
		Duration: 1,
		Availability: domain.Availability{
			{Day: domain.Monday, TimeSlots: []domain.TimeRange{{StartTime: "09:00", EndTime: "17:00"}}},
		},
		PriceID:   &priceID,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newStore(t *testing.T, storage *memoryStorage) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), NewStorageRepository(storage, domain.DefaultCartStorageKey))
	require.NoError(t, err)
	return store
}

func TestNewStore_EmptyWhenNothingPersisted(t *testing.T) {
	store := newStore(t, newMemoryStorage())

	assert.Empty(t, store.Snapshot())
	assert.NotNil(t, store.Snapshot())
	assert.Zero(t, store.Total())
}

func TestNewStore_HydrateError(t *testing.T) {
	storage := newMemoryStorage()
	storage.failGet = errors.New("connection refused")

	_, err := NewStore(context.Background(), NewStorageRepository(storage, domain.DefaultCartStorageKey))
	assert.ErrorIs(t, err, ErrHydrate)
}

func TestStore_AddItemKeepsDuplicates(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, newMemoryStorage())

	p := product("p1", 1200)
	require.NoError(t, store.AddItem(ctx, p, "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning))
	require.NoError(t, store.AddItem(ctx, p, "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning))

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2400.0, store.Total())

	removed, err := store.RemoveItem(ctx, "p1", "2025-03-10", "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Empty(t, store.Snapshot())
}

func TestStore_RemoveItemMatchesAllThreeFields(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, newMemoryStorage())

	p1 := product("p1", 100)
	p2 := product("p2", 200)
	require.NoError(t, store.AddItem(ctx, p1, "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning))
	require.NoError(t, store.AddItem(ctx, p1, "2025-03-17", "9:00 AM - 10:00 AM", domain.DayPartMorning))
	require.NoError(t, store.AddItem(ctx, p1, "2025-03-10", "10:00 AM - 11:00 AM", domain.DayPartMorning))
	require.NoError(t, store.AddItem(ctx, p2, "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning))

	removed, err := store.RemoveItem(ctx, "p1", "2025-03-10", "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	items := store.Snapshot()
	require.Len(t, items, 3)
	assert.Equal(t, "2025-03-17", items[0].SelectedDate)
	assert.Equal(t, "10:00 AM - 11:00 AM", items[1].SelectedTimeSlot)
	assert.Equal(t, "p2", items[2].Product.ID)
}

func TestStore_RemoveItemOnEmptyCart(t *testing.T) {
	store := newStore(t, newMemoryStorage())

	removed, err := store.RemoveItem(context.Background(), "missing", "2025-03-10", "9:00 AM - 10:00 AM")

	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Empty(t, store.Snapshot())
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	store := newStore(t, storage)

	require.NoError(t, store.AddItem(ctx, product("p1", 100), "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning))
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, store.Snapshot())

	// Очистка тоже сохраняется
	reloaded := newStore(t, storage)
	assert.Empty(t, reloaded.Snapshot())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	storage.data[domain.DefaultCartStorageKey] = []byte(`{"state":`)
	repo := NewStorageRepository(storage, domain.DefaultCartStorageKey)

	_, err := NewStore(ctx, repo)
	require.ErrorIs(t, err, ErrHydrate)

	require.NoError(t, Reset(ctx, repo))
	assert.JSONEq(t, `{"state":{"items":[]},"version":0}`, string(storage.data[domain.DefaultCartStorageKey]))

	store, err := NewStore(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, store.Len())

	storage.failSet = errors.New("read-only")
	assert.ErrorIs(t, Reset(ctx, repo), ErrPersist)
}

func TestStore_PersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	store := newStore(t, storage)

	require.NoError(t, store.AddItem(ctx, product("p2", 1500), "2025-03-11", "4:00 PM - 5:00 PM", domain.DayPartEvening))
	require.NoError(t, store.AddItem(ctx, product("p1", 1200), "2025-03-10", "12:00 PM - 1:00 PM", domain.DayPartAfternoon))
	require.NoError(t, store.AddItem(ctx, product("p1", 1200), "2025-03-10", "12:00 PM - 1:00 PM", domain.DayPartAfternoon))

	reloaded := newStore(t, storage)

	assert.Equal(t, store.Snapshot(), reloaded.Snapshot())
}

func TestStore_FailedPersistKeepsState(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	store := newStore(t, storage)

	require.NoError(t, store.AddItem(ctx, product("p1", 100), "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning))

	storage.failSet = errors.New("disk full")

	err := store.AddItem(ctx, product("p2", 200), "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning)
	assert.ErrorIs(t, err, ErrPersist)

	_, err = store.RemoveItem(ctx, "p1", "2025-03-10", "9:00 AM - 10:00 AM")
	assert.ErrorIs(t, err, ErrPersist)

	assert.ErrorIs(t, store.Clear(ctx), ErrPersist)

	items := store.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, newMemoryStorage())
	require.NoError(t, store.AddItem(ctx, product("p1", 100), "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning))

	snapshot := store.Snapshot()
	snapshot[0].SelectedDate = "changed"

	assert.Equal(t, "2025-03-10", store.Snapshot()[0].SelectedDate)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, newMemoryStorage())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.AddItem(ctx, product("p1", 10), "2025-03-10", "9:00 AM - 10:00 AM", domain.DayPartMorning)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
	assert.Equal(t, 200.0, store.Total())
}
