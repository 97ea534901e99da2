package prepare_checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/internal/service/leadtime"
	"github.com/m04kA/SMC-CartService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	return nil
}

// validateLeadTime проверяет все исходные позиции группы в порядке originalItems
// и возвращает ошибку для первой неподходящей
func validateLeadTime(validator LeadTimeValidator, group domain.MergedGroup, now time.Time) error {
	if group.InvalidTime {
		return fmt.Errorf("%w: %q", ErrInvalidTime, group.Time)
	}

	for _, item := range group.OriginalItems {
		err := validator.Check(item.Date, item.Time, now)
		if err == nil {
			continue
		}

		if errors.Is(err, leadtime.ErrInvalidTime) || errors.Is(err, leadtime.ErrInvalidDate) {
			return fmt.Errorf("%w: item %s: %v", ErrInvalidTime, item.Key(), err)
		}

		return &LeadTimeViolationError{
			RoomName:  item.RoomName,
			Date:      item.Date,
			StartTime: startTime(item.Time),
			Reason:    err,
		}
	}

	return nil
}

// startTime время начала слота в виде HH:MM
func startTime(timeRange string) string {
	span, err := types.ParseTimeRange(timeRange)
	if err != nil {
		start, _, _ := strings.Cut(strings.TrimSpace(timeRange), types.TimeRangeSeparator)
		return start
	}
	return span.Start.String()
}
