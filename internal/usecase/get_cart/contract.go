package get_cart

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// CartService интерфейс адаптера корзины
type CartService interface {
	Load(ctx context.Context) []domain.CartLineItem
}

// Grouper интерфейс движка группировки
type Grouper interface {
	Group(items []domain.CartLineItem) []domain.MergedGroup
}

// BookabilityChecker интерфейс проверки запаса времени до начала слота
type BookabilityChecker interface {
	IsBookableNow(date, timeRange string, now time.Time) bool
}

// Metrics интерфейс для метрик
type Metrics interface {
	CartView(items, groups int)
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
