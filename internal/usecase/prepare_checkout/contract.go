package prepare_checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/internal/service/cart"
)

// CartService интерфейс адаптера корзины
type CartService interface {
	Load(ctx context.Context) []domain.CartLineItem
	Remove(ctx context.Context, keys domain.ItemKeySet) (*cart.RemoveResult, error)
	StageCheckout(ctx context.Context, bookings []domain.ProcessedBooking) error
}

// Grouper интерфейс движка группировки
type Grouper interface {
	Group(items []domain.CartLineItem) []domain.MergedGroup
}

// LeadTimeValidator интерфейс проверки запаса времени до начала слота
type LeadTimeValidator interface {
	Check(date, timeRange string, now time.Time) error
}

// Metrics интерфейс для метрик
type Metrics interface {
	CheckoutOutcome(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
