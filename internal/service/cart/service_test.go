package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/internal/infra/storage/kv"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	mu      sync.Mutex
	faults  map[string]int
	reloads map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{faults: map[string]int{}, reloads: map[string]int{}}
}

func (m *fakeMetrics) StorageFault(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults[kind]++
}

func (m *fakeMetrics) CartReload(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloads[source]++
}

func (m *fakeMetrics) fault(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.faults[kind]
}

// failingStore отказывает в записи
type failingStore struct {
	*kv.MemoryStore
}

func (s failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

// flakyReadStore отказывает в чтении failures раз подряд
type flakyReadStore struct {
	*kv.MemoryStore
	mu       sync.Mutex
	failures int
}

func (s *flakyReadStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	if s.failures > 0 {
		s.failures--
		s.mu.Unlock()
		return "", errors.New("i/o timeout")
	}
	s.mu.Unlock()
	return s.MemoryStore.Get(ctx, key)
}

func sampleItem(roomID int64, date, timeRange string) domain.CartLineItem {
	return domain.CartLineItem{
		RoomID:     roomID,
		RoomName:   "Sauna",
		Date:       date,
		Time:       timeRange,
		BasePrice:  1000,
		TotalPrice: 1000,
	}
}

func newTestService(t *testing.T) (*Service, *kv.MemoryStore, *fakeMetrics) {
	t.Helper()
	store := kv.NewMemoryStore()
	m := newFakeMetrics()
	return NewService(store, "", m, nopLogger{}), store, m
}

func TestService_LoadMissingKey(t *testing.T) {
	svc, _, m := newTestService(t)

	items := svc.Load(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Zero(t, m.fault(faultParse))
}

func TestService_LoadCorruptedPayload(t *testing.T) {
	ctx := context.Background()
	svc, store, m := newTestService(t)
	require.NoError(t, store.Set(ctx, domain.CartKey, "{not json"))

	items := svc.Load(ctx)
	assert.Empty(t, items)
	assert.Equal(t, 1, m.fault(faultParse))
}

func TestService_LoadDropsIncompleteItems(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	require.NoError(t, store.Set(ctx, domain.CartKey, `[
		{"roomId": 1, "date": "2025-01-01", "time": "09:00 - 10:00"},
		{"roomId": 0, "date": "2025-01-01", "time": "10:00 - 11:00"},
		{"roomId": 2, "date": "", "time": "10:00 - 11:00"},
		{"roomId": 3, "date": "2025-01-01", "time": "  "}
	]`))

	items := svc.Load(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].RoomID)
}

func TestService_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	items := []domain.CartLineItem{
		sampleItem(1, "2025-01-01", "09:00 - 10:00"),
		sampleItem(1, "2025-01-01", "10:00 - 11:00"),
	}
	require.NoError(t, svc.Save(ctx, items))
	assert.Equal(t, items, svc.Load(ctx))

	require.NoError(t, svc.Save(ctx, nil))
	raw, err := store.Get(ctx, domain.CartKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestService_SaveFailure(t *testing.T) {
	m := newFakeMetrics()
	svc := NewService(failingStore{kv.NewMemoryStore()}, "", m, nopLogger{})

	err := svc.Save(context.Background(), []domain.CartLineItem{sampleItem(1, "2025-01-01", "09:00 - 10:00")})
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, 1, m.fault(faultWrite))
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	a := sampleItem(1, "2025-01-01", "09:00 - 10:00")
	b := sampleItem(1, "2025-01-01", "10:00 - 11:00")
	c := sampleItem(2, "2025-01-01", "09:00 - 10:00")
	require.NoError(t, svc.Save(ctx, []domain.CartLineItem{a, b, c}))

	result, err := svc.Remove(ctx, domain.NewItemKeySet(a.Key(), c.Key(), "99_2025-01-01_09:00 - 10:00"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Removed)
	assert.Equal(t, []domain.CartLineItem{b}, result.Remaining)
	assert.Equal(t, []domain.CartLineItem{b}, svc.Load(ctx))
}

func TestService_Append(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	a := sampleItem(1, "2025-01-01", "09:00 - 10:00")
	b := sampleItem(1, "2025-01-01", "10:00 - 11:00")
	require.NoError(t, svc.Append(ctx, a))
	require.NoError(t, svc.Append(ctx, b))

	assert.Equal(t, []domain.CartLineItem{a, b}, svc.Load(ctx))
}

func TestService_WritesKeepCartOnReadFailure(t *testing.T) {
	ctx := context.Background()
	a := sampleItem(1, "2025-01-01", "09:00 - 10:00")
	b := sampleItem(1, "2025-01-01", "10:00 - 11:00")
	c := sampleItem(2, "2025-01-01", "09:00 - 10:00")

	store := &flakyReadStore{MemoryStore: kv.NewMemoryStore()}
	m := newFakeMetrics()
	svc := NewService(store, "", m, nopLogger{})
	require.NoError(t, svc.Save(ctx, []domain.CartLineItem{a, b, c}))

	store.failures = 1
	result, err := svc.Remove(ctx, domain.NewItemKeySet(a.Key()))
	assert.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, result)
	assert.Equal(t, []domain.CartLineItem{a, b, c}, svc.Load(ctx))

	store.failures = 1
	err = svc.Append(ctx, sampleItem(3, "2025-01-01", "09:00 - 10:00"))
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, []domain.CartLineItem{a, b, c}, svc.Load(ctx))

	assert.Equal(t, 2, m.fault(faultRead))
	assert.Equal(t, 0, m.fault(faultWrite))

	// после восстановления чтения запись проходит
	result, err = svc.Remove(ctx, domain.NewItemKeySet(a.Key()))
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLineItem{b, c}, result.Remaining)
}

func TestService_AppendOverCorruptedPayload(t *testing.T) {
	ctx := context.Background()
	svc, store, m := newTestService(t)
	require.NoError(t, store.Set(ctx, domain.CartKey, `{not json`))

	item := sampleItem(1, "2025-01-01", "09:00 - 10:00")
	require.NoError(t, svc.Append(ctx, item))

	assert.Equal(t, []domain.CartLineItem{item}, svc.Load(ctx))
	assert.Equal(t, 1, m.fault(faultParse))
}

func TestService_StageCheckout(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	require.NoError(t, store.Set(ctx, domain.PaymentStateKey, `{"status":"pending"}`))
	require.NoError(t, store.Set(ctx, domain.SelectedBookingKey, `{"roomId":1}`))

	staged, err := svc.StagedCheckout(ctx)
	require.NoError(t, err)
	assert.Empty(t, staged)

	booking := domain.ProcessedBooking{
		RoomID:     1,
		RoomName:   "Sauna",
		Date:       "2025-01-01",
		Time:       "09:00 - 11:00",
		BasePrice:  2000,
		TotalPrice: 2000,
	}
	require.NoError(t, svc.StageCheckout(ctx, []domain.ProcessedBooking{booking}))

	_, err = store.Get(ctx, domain.PaymentStateKey)
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	_, err = store.Get(ctx, domain.SelectedBookingKey)
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	staged, err = svc.StagedCheckout(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ProcessedBooking{booking}, staged)
}

func TestService_StagedCheckoutCorrupted(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	require.NoError(t, store.Set(ctx, domain.ProcessedBookingsKey, "oops"))

	_, err := svc.StagedCheckout(ctx)
	assert.ErrorIs(t, err, ErrCorruptedPayload)
}

func TestService_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := NewService(store, "user-7:", newFakeMetrics(), nopLogger{})

	require.NoError(t, svc.Append(ctx, sampleItem(1, "2025-01-01", "09:00 - 10:00")))

	_, err := store.Get(ctx, "user-7:cart")
	assert.NoError(t, err)
	_, err = store.Get(ctx, domain.CartKey)
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	assert.Equal(t, "user-7:cartUpdated", svc.Channel())
}

func TestService_SaveNotifiesSubscribers(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	updates, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	require.NoError(t, svc.Append(ctx, sampleItem(1, "2025-01-01", "09:00 - 10:00")))

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("cartUpdated was not delivered")
	}
}

func TestService_RefreshIgnoresOwnWrites(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	require.NoError(t, svc.Append(ctx, sampleItem(1, "2025-01-01", "09:00 - 10:00")))
	assert.False(t, svc.Refresh(ctx, SourcePoll))

	require.NoError(t, store.Set(ctx, domain.CartKey, "[]"))
	assert.True(t, svc.Refresh(ctx, SourcePoll))
	assert.False(t, svc.Refresh(ctx, SourcePoll))
}
