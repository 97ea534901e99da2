package prepare_checkout

import (
	"context"

	"github.com/m04kA/SMC-CartService/internal/domain"
	prepareCheckout "github.com/m04kA/SMC-CartService/internal/usecase/prepare_checkout"
)

type PrepareCheckoutUseCase interface {
	Execute(ctx context.Context, req *prepareCheckout.Request) (*domain.ProcessedBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
