package remove_cart_items

import (
	"context"

	removeCartItems "github.com/m04kA/SMC-CartService/internal/usecase/remove_cart_items"
)

type RemoveCartItemsUseCase interface {
	Execute(ctx context.Context, req *removeCartItems.Request) (*removeCartItems.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
