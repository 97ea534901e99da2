package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/internal/infra/storage/kv"
)

// Виды ошибок хранилища для метрик
const (
	faultParse = "parse"
	faultRead  = "read"
	faultWrite = "write"
)

// Источники перечитывания корзины
const (
	SourcePoll         = "poll"
	SourceSubscription = "subscription"
)

// Service адаптер хранилища корзины
//
// Корзина хранится одним JSON массивом под ключом cart, последняя запись побеждает.
// После каждой успешной записи подписчики получают cartUpdated.
type Service struct {
	store       Store
	publisher   Publisher
	prefix      string
	broadcaster *Broadcaster
	metrics     Metrics
	logger      Logger

	mu       sync.Mutex
	snapshot string
}

// NewService создает адаптер корзины
// prefix добавляется ко всем ключам и к каналу уведомлений
func NewService(store Store, prefix string, metrics Metrics, logger Logger) *Service {
	s := &Service{
		store:       store,
		prefix:      prefix,
		broadcaster: NewBroadcaster(),
		metrics:     metrics,
		logger:      logger,
	}
	if p, ok := store.(Publisher); ok {
		s.publisher = p
	}
	return s
}

// Channel имя канала уведомлений в хранилище
func (s *Service) Channel() string {
	return s.key(domain.CartUpdatedEvent)
}

// Subscribe подписка на локальные уведомления cartUpdated
func (s *Service) Subscribe() (<-chan struct{}, func()) {
	return s.broadcaster.Subscribe()
}

// Close отключает всех подписчиков на локальные уведомления
func (s *Service) Close() {
	s.broadcaster.Close()
}

// Load возвращает содержимое корзины
//
// Ошибки чтения и разбора не возвращаются: корзина считается пустой,
// ошибка логируется. Записи без комнаты, даты или времени отбрасываются.
func (s *Service) Load(ctx context.Context) []domain.CartLineItem {
	items, err := s.read(ctx)
	if err != nil {
		return []domain.CartLineItem{}
	}
	return items
}

// read читает корзину для последующей записи
// Отсутствующий ключ и повреждённый JSON дают пустую корзину,
// остальные ошибки хранилища возвращаются: запись поверх них потеряла бы позиции
func (s *Service) read(ctx context.Context) ([]domain.CartLineItem, error) {
	raw, err := s.store.Get(ctx, s.key(domain.CartKey))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []domain.CartLineItem{}, nil
	}
	if err != nil {
		s.logger.Error("Load: failed to read cart: %v", err)
		s.metrics.StorageFault(faultRead)
		return nil, fmt.Errorf("%w: read cart: %v", ErrStorage, err)
	}

	items, err := decodeItems(raw)
	if err != nil {
		s.logger.Warn("Load: cart payload is corrupted, treating cart as empty: %v", err)
		s.metrics.StorageFault(faultParse)
		return []domain.CartLineItem{}, nil
	}

	valid := make([]domain.CartLineItem, 0, len(items))
	for _, item := range items {
		if !item.HasRequiredFields() {
			s.logger.Warn("Load: dropping cart item without room, date or time: roomId=%d, date=%q, time=%q",
				item.RoomID, item.Date, item.Time)
			continue
		}
		valid = append(valid, item)
	}

	return valid, nil
}

// Save заменяет содержимое корзины целиком
func (s *Service) Save(ctx context.Context, items []domain.CartLineItem) error {
	if items == nil {
		items = []domain.CartLineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal items: %v", ErrEncode, err)
	}
	raw := string(data)

	if err := s.store.Set(ctx, s.key(domain.CartKey), raw); err != nil {
		s.logger.Error("Save: failed to write cart: %v", err)
		s.metrics.StorageFault(faultWrite)
		return fmt.Errorf("%w: Save - items=%d: %v", ErrStorage, len(items), err)
	}

	s.remember(raw)
	s.notify(ctx)
	return nil
}

// Append добавляет позицию в конец корзины
// При ошибке чтения корзина не перезаписывается
func (s *Service) Append(ctx context.Context, item domain.CartLineItem) error {
	items, err := s.read(ctx)
	if err != nil {
		return err
	}
	items = append(items, item)
	return s.Save(ctx, items)
}

// Remove удаляет позиции, чей составной ключ есть в keys
// При ошибке чтения корзина не перезаписывается
func (s *Service) Remove(ctx context.Context, keys domain.ItemKeySet) (*RemoveResult, error) {
	items, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]domain.CartLineItem, 0, len(items))
	for _, item := range items {
		if keys.Contains(item) {
			continue
		}
		remaining = append(remaining, item)
	}

	if err := s.Save(ctx, remaining); err != nil {
		return nil, err
	}

	return &RemoveResult{
		Removed:   len(items) - len(remaining),
		Remaining: remaining,
	}, nil
}

// StageCheckout сбрасывает состояние оплаты и выбранную бронь,
// затем записывает bookings под ключом processedBookings
func (s *Service) StageCheckout(ctx context.Context, bookings []domain.ProcessedBooking) error {
	if err := s.store.Delete(ctx, s.key(domain.PaymentStateKey), s.key(domain.SelectedBookingKey)); err != nil {
		s.metrics.StorageFault(faultWrite)
		return fmt.Errorf("%w: StageCheckout - clear payment state: %v", ErrStorage, err)
	}

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: StageCheckout - marshal bookings: %v", ErrEncode, err)
	}

	if err := s.store.Set(ctx, s.key(domain.ProcessedBookingsKey), string(data)); err != nil {
		s.metrics.StorageFault(faultWrite)
		return fmt.Errorf("%w: StageCheckout - bookings=%d: %v", ErrStorage, len(bookings), err)
	}

	return nil
}

// StagedCheckout возвращает подготовленные к оплате брони
// Если ничего не подготовлено, возвращается пустой список
func (s *Service) StagedCheckout(ctx context.Context) ([]domain.ProcessedBooking, error) {
	raw, err := s.store.Get(ctx, s.key(domain.ProcessedBookingsKey))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []domain.ProcessedBooking{}, nil
		}
		s.metrics.StorageFault(faultRead)
		return nil, fmt.Errorf("%w: StagedCheckout: %v", ErrStorage, err)
	}

	var bookings []domain.ProcessedBooking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		s.metrics.StorageFault(faultParse)
		return nil, fmt.Errorf("%w: StagedCheckout: %v", ErrCorruptedPayload, err)
	}
	if bookings == nil {
		bookings = []domain.ProcessedBooking{}
	}

	return bookings, nil
}

// Refresh перечитывает сырое содержимое корзины и, если оно изменилось
// с последней известной записи, рассылает локальное cartUpdated.
// Возвращает true, если изменение было обнаружено
func (s *Service) Refresh(ctx context.Context, source string) bool {
	raw, err := s.store.Get(ctx, s.key(domain.CartKey))
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		s.logger.Warn("Refresh: failed to read cart snapshot: %v", err)
		s.metrics.StorageFault(faultRead)
		return false
	}

	s.mu.Lock()
	changed := raw != s.snapshot
	s.snapshot = raw
	s.mu.Unlock()

	if !changed {
		return false
	}

	s.metrics.CartReload(source)
	s.broadcaster.Publish()
	return true
}

func (s *Service) remember(raw string) {
	s.mu.Lock()
	s.snapshot = raw
	s.mu.Unlock()
}

func (s *Service) notify(ctx context.Context) {
	s.broadcaster.Publish()

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, s.Channel()); err != nil {
		s.logger.Warn("notify: failed to publish %s: %v", domain.CartUpdatedEvent, err)
	}
}

func (s *Service) key(name string) string {
	return s.prefix + name
}

func decodeItems(raw string) ([]domain.CartLineItem, error) {
	var items []domain.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
