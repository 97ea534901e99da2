package get_staged_checkout

import (
	"context"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

type GetStagedCheckoutUseCase interface {
	Execute(ctx context.Context) ([]domain.ProcessedBooking, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
