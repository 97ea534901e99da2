package get_cart

import (
	"context"
)

// UseCase use case для получения сгруппированной корзины
type UseCase struct {
	cartService  CartService
	grouper      Grouper
	checker      BookabilityChecker
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cartService CartService,
	grouper Grouper,
	checker BookabilityChecker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartService:  cartService,
		grouper:      grouper,
		checker:      checker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute читает корзину и строит её представление
// Группы пересчитываются при каждом вызове и нигде не сохраняются
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Читаем корзину (ошибки хранилища уже обработаны адаптером)
	items := uc.cartService.Load(ctx)

	// 2. Группируем позиции
	merged := uc.grouper.Group(items)

	// 3. Проверяем запас времени на момент запроса
	now := uc.timeProvider.Now()

	resp := &Response{
		Groups:      make([]Group, 0, len(merged)),
		ItemsCount:  len(items),
		GroupsCount: len(merged),
	}

	for _, g := range merged {
		bookable := !g.InvalidTime && uc.checker.IsBookableNow(g.Date, g.Time, now)
		resp.Groups = append(resp.Groups, Group{
			MergedGroup: g,
			Key:         g.Key(),
			Bookable:    bookable,
		})
		resp.TotalPrice += g.TotalPrice
	}

	uc.metrics.CartView(resp.ItemsCount, resp.GroupsCount)
	uc.logger.Info("GetCart: items=%d, groups=%d", resp.ItemsCount, resp.GroupsCount)

	return resp, nil
}
