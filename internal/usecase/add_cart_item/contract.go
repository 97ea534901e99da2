package add_cart_item

import (
	"context"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// CartService интерфейс адаптера корзины
type CartService interface {
	Append(ctx context.Context, item domain.CartLineItem) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
