package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/internal/infra/storage/kv"
)

func receives(ch <-chan struct{}) func() bool {
	return func() bool {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}
}

func TestWatcher_PollDetectsExternalChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc, store, _ := newTestService(t)

	svc.Refresh(ctx, SourcePoll)

	watcher := NewWatcher(svc, store, 20*time.Millisecond, nopLogger{})
	done := make(chan struct{})
	go func() {
		watcher.Run(ctx)
		close(done)
	}()

	updates, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	// запись другим процессом в обход адаптера
	require.NoError(t, store.Set(ctx, domain.CartKey, `[{"roomId":1,"date":"2025-01-01","time":"09:00 - 10:00"}]`))

	require.Eventually(t, receives(updates), 2*time.Second, 10*time.Millisecond)
	require.Len(t, svc.Load(ctx), 1)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_SubscriptionDetectsExternalChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mr := miniredis.RunT(t)
	store := kv.NewRedisStore(kv.NewRedisClient(mr.Addr(), "", 0))
	t.Cleanup(func() { store.Close() })

	svc := NewService(store, "", newFakeMetrics(), nopLogger{})
	// интервал опроса заведомо больше таймаута теста: изменение должно прийти по подписке
	watcher := NewWatcher(svc, store, time.Hour, nopLogger{})
	go watcher.Run(ctx)

	updates, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	other := NewService(kv.NewRedisStore(kv.NewRedisClient(mr.Addr(), "", 0)), "", newFakeMetrics(), nopLogger{})

	require.Eventually(t, func() bool {
		// публикуем, пока наблюдатель не подписался и не принял изменение
		if err := other.Append(ctx, sampleItem(1, "2025-01-01", "09:00 - 10:00")); err != nil {
			return false
		}
		return receives(updates)()
	}, 2*time.Second, 50*time.Millisecond)
}
