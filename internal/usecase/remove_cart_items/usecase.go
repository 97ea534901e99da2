package remove_cart_items

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// UseCase use case для удаления позиций из корзины
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

// Execute удаляет позиции по составным ключам ${roomId}_${date}_${time}
// Отсутствующие в корзине ключи игнорируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RemoveCartItems: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем ключи
	keys := domain.NewItemKeySet()
	for _, ref := range req.Items {
		keys[domain.ItemKey(ref.RoomID, ref.Date, ref.Time)] = struct{}{}
	}

	// 3. Удаляем
	result, err := uc.cartService.Remove(ctx, keys)
	if err != nil {
		uc.logger.Error("RemoveCartItems: failed to remove %d keys: %v", len(keys), err)
		return nil, fmt.Errorf("%w: failed to remove items: %v", ErrInternal, err)
	}

	uc.logger.Info("RemoveCartItems: removed=%d, remaining=%d", result.Removed, len(result.Remaining))

	return &Response{
		Removed:   result.Removed,
		Remaining: len(result.Remaining),
	}, nil
}
