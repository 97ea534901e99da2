package get_cart

import (
	"context"

	getCart "github.com/m04kA/SMC-CartService/internal/usecase/get_cart"
)

type GetCartUseCase interface {
	Execute(ctx context.Context) (*getCart.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
