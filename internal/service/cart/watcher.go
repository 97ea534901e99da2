package cart

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// Watcher отслеживает изменения корзины, сделанные в обход этого процесса
//
// Если хранилище умеет Subscribe, корзина перечитывается по каждому уведомлению.
// Иначе хранилище опрашивается с интервалом interval.
type Watcher struct {
	service    *Service
	subscriber Subscriber
	interval   time.Duration
	logger     Logger
}

// NewWatcher создает наблюдателя за корзиной
func NewWatcher(service *Service, store Store, interval time.Duration, logger Logger) *Watcher {
	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}
	w := &Watcher{
		service:  service,
		interval: interval,
		logger:   logger,
	}
	if sub, ok := store.(Subscriber); ok {
		w.subscriber = sub
	}
	return w
}

// Run блокируется до отмены ctx
func (w *Watcher) Run(ctx context.Context) {
	// Запоминаем текущее состояние, чтобы не разослать его как изменение
	w.service.Refresh(ctx, SourcePoll)

	if w.subscriber != nil {
		if w.subscribe(ctx) {
			return
		}
	}

	w.poll(ctx)
}

// subscribe возвращает true, если наблюдение завершено отменой ctx,
// и false, если нужно перейти на опрос
func (w *Watcher) subscribe(ctx context.Context) bool {
	updates, err := w.subscriber.Subscribe(ctx, w.service.Channel())
	if err != nil {
		w.logger.Warn("Watcher: subscription failed, falling back to polling every %s: %v", w.interval, err)
		return false
	}

	w.logger.Info("Watcher: listening for %s on channel %s", domain.CartUpdatedEvent, w.service.Channel())

	for range updates {
		w.service.Refresh(ctx, SourceSubscription)
	}

	if ctx.Err() != nil {
		return true
	}

	w.logger.Warn("Watcher: subscription closed, falling back to polling every %s", w.interval)
	return false
}

func (w *Watcher) poll(ctx context.Context) {
	w.logger.Info("Watcher: polling cart every %s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.service.Refresh(ctx, SourcePoll)
		}
	}
}
