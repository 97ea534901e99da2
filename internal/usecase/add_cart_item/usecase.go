package add_cart_item

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// UseCase use case для добавления слота в корзину
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

// Execute добавляет слот в конец корзины
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddCartItem: room=%d, date=%s, time=%s", req.RoomID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddCartItem: validation failed: %v", err)
		return nil, err
	}

	// 2. Приводим поля к каноничному виду, по ним строится составной ключ
	item := domain.CartLineItem{
		RoomID:         req.RoomID,
		RoomName:       strings.TrimSpace(req.RoomName),
		Photo:          req.Photo,
		Date:           strings.TrimSpace(req.Date),
		Time:           strings.TrimSpace(req.Time),
		BasePrice:      req.BasePrice,
		TotalPrice:     req.TotalPrice,
		ExpertServices: nonNil(req.ExpertServices),
		ExtraServices:  nonNil(req.ExtraServices),
	}

	// 3. Сохраняем
	if err := uc.cartService.Append(ctx, item); err != nil {
		uc.logger.Error("AddCartItem: failed to append item %s: %v", item.Key(), err)
		return nil, fmt.Errorf("%w: failed to append item: %v", ErrInternal, err)
	}

	uc.logger.Info("AddCartItem: item %s added", item.Key())

	return &Response{Item: item}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
