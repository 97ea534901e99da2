package prepare_checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems возвращается, когда в группе нет исходных позиций
	ErrNoItems = errors.New("prepare_checkout: no items to check out")

	// ErrLeadTimeViolation возвращается, когда до начала слота осталось слишком мало времени
	ErrLeadTimeViolation = errors.New("prepare_checkout: lead time violation")

	// ErrInvalidTime возвращается, когда время позиции не удалось разобрать
	ErrInvalidTime = errors.New("prepare_checkout: invalid time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("prepare_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("prepare_checkout: internal error")
)

// LeadTimeViolationError первая позиция группы, которую уже нельзя оформить
type LeadTimeViolationError struct {
	RoomName  string
	Date      string
	StartTime string
	Reason    error
}

func (e *LeadTimeViolationError) Error() string {
	return fmt.Sprintf("%v: room %q at %s %s: %v", ErrLeadTimeViolation, e.RoomName, e.Date, e.StartTime, e.Reason)
}

func (e *LeadTimeViolationError) Unwrap() error {
	return ErrLeadTimeViolation
}
