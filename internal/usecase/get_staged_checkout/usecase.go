package get_staged_checkout

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// UseCase use case для получения броней, переданных в оплату
type UseCase struct {
	cartService CartService
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cartService CartService, logger Logger) *UseCase {
	return &UseCase{
		cartService: cartService,
		logger:      logger,
	}
}

// Execute возвращает содержимое processedBookings
func (uc *UseCase) Execute(ctx context.Context) ([]domain.ProcessedBooking, error) {
	bookings, err := uc.cartService.StagedCheckout(ctx)
	if err != nil {
		uc.logger.Error("GetStagedCheckout: failed to read staged bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetStagedCheckout: bookings=%d", len(bookings))
	return bookings, nil
}
