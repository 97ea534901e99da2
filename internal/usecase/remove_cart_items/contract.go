package remove_cart_items

import (
	"context"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/internal/service/cart"
)

// CartService интерфейс адаптера корзины
type CartService interface {
	Remove(ctx context.Context, keys domain.ItemKeySet) (*cart.RemoveResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
