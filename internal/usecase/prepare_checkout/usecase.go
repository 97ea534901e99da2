package prepare_checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/pkg/metrics"
)

// UseCase use case для подготовки группы к оплате
type UseCase struct {
	cartService  CartService
	grouper      Grouper
	validator    LeadTimeValidator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cartService CartService,
	grouper Grouper,
	validator LeadTimeValidator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartService:  cartService,
		grouper:      grouper,
		validator:    validator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute находит группу текущей корзины по ключу и оформляет её
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ProcessedBooking, error) {
	uc.logger.Info("PrepareCheckout: room=%d, date=%s, time=%s", req.RoomID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PrepareCheckout: validation failed: %v", err)
		return nil, err
	}

	// 2. Пересчитываем группы по актуальному состоянию корзины
	groups := uc.grouper.Group(uc.cartService.Load(ctx))

	key := domain.ItemKey(req.RoomID, strings.TrimSpace(req.Date), strings.TrimSpace(req.Time))
	for _, group := range groups {
		if group.Key() == key {
			return uc.Prepare(ctx, group)
		}
	}

	uc.logger.Warn("PrepareCheckout: group %s not found in cart", key)
	uc.metrics.CheckoutOutcome(metrics.CheckoutNoItems)
	return nil, fmt.Errorf("%w: group %s", ErrNoItems, key)
}

// Prepare проверяет группу, строит бронь для оплаты и только при успехе
// удаляет исходные позиции из корзины и записывает бронь в processedBookings
func (uc *UseCase) Prepare(ctx context.Context, group domain.MergedGroup) (*domain.ProcessedBooking, error) {
	// 1. Пустая группа
	if group.IsEmpty() {
		uc.logger.Warn("PrepareCheckout: group %s has no items", group.Key())
		uc.metrics.CheckoutOutcome(metrics.CheckoutNoItems)
		return nil, ErrNoItems
	}

	// 2. Перепроверяем запас времени на момент оформления, а не отрисовки
	now := uc.timeProvider.Now()
	if err := validateLeadTime(uc.validator, group, now); err != nil {
		uc.logger.Warn("PrepareCheckout: group %s rejected: %v", group.Key(), err)
		uc.metrics.CheckoutOutcome(outcome(err))
		return nil, err
	}

	// 3. Базовая цена - остаток totalPrice после вычета всех услуг
	basePrice := group.TotalPrice - group.ExpertServicesTotal() - group.ExtraServicesTotal()

	// 4. Бронь для оплаты
	booking := &domain.ProcessedBooking{
		RoomID:         group.RoomID,
		RoomName:       group.RoomName,
		Date:           group.Date,
		Time:           group.Time,
		BasePrice:      basePrice,
		TotalPrice:     group.TotalPrice,
		ExpertServices: group.ExpertServices,
		ExtraServices:  group.ExtraServices,
	}

	// 5. Удаляем исходные позиции; ошибка не мешает оплате
	if _, err := uc.cartService.Remove(ctx, group.ItemKeys()); err != nil {
		uc.logger.Error("PrepareCheckout: failed to remove items of group %s: %v", group.Key(), err)
	}

	// 6. Передаём бронь в оплату
	if err := uc.cartService.StageCheckout(ctx, []domain.ProcessedBooking{*booking}); err != nil {
		uc.logger.Error("PrepareCheckout: failed to stage group %s: %v", group.Key(), err)
		uc.metrics.CheckoutOutcome(metrics.CheckoutFailed)
		return nil, fmt.Errorf("%w: failed to stage checkout: %v", ErrInternal, err)
	}

	uc.metrics.CheckoutOutcome(metrics.CheckoutCommitted)
	uc.logger.Info("PrepareCheckout: group %s staged, items=%d, total=%.2f",
		group.Key(), len(group.OriginalItems), booking.TotalPrice)

	return booking, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrLeadTimeViolation):
		return metrics.CheckoutLeadTime
	case errors.Is(err, ErrInvalidTime):
		return metrics.CheckoutInvalid
	default:
		return metrics.CheckoutFailed
	}
}
