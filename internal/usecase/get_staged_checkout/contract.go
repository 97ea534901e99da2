package get_staged_checkout

import (
	"context"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// CartService интерфейс адаптера корзины
type CartService interface {
	StagedCheckout(ctx context.Context) ([]domain.ProcessedBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
