package leadtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/pkg/types"
)

// Validator проверяет, что слот ещё можно оформить
type Validator struct {
	minLead  time.Duration
	location *time.Location
}

// NewValidator создает валидатор с минимальным временем до начала слота
// Если loc == nil, используется time.Local
func NewValidator(minLeadMinutes int, loc *time.Location) *Validator {
	if minLeadMinutes < 0 {
		minLeadMinutes = domain.DefaultMinLeadTimeMinutes
	}
	if loc == nil {
		loc = time.Local
	}
	return &Validator{
		minLead:  time.Duration(minLeadMinutes) * time.Minute,
		location: loc,
	}
}

// MinLead возвращает минимальное время до начала слота
func (v *Validator) MinLead() time.Duration {
	return v.minLead
}

// IsBookableNow возвращает true, если слот date/timeRange можно оформить в момент now
// Любая ошибка разбора даты или времени даёт false
func (v *Validator) IsBookableNow(date, timeRange string, now time.Time) bool {
	return v.Check(date, timeRange, now) == nil
}

// Check проверяет слот и возвращает причину отказа
//
// Правила:
// - день слота позже сегодняшнего - слот доступен без проверки времени
// - день слота сегодня - до начала должно оставаться не меньше minLead
// - день слота в прошлом - слот недоступен
func (v *Validator) Check(date, timeRange string, now time.Time) error {
	slotDate, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(date), v.location)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	span, err := types.ParseTimeRange(timeRange)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	slotStart, err := span.Start.OnDate(slotDate, v.location)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	localNow := now.In(v.location)
	today := truncateToDay(localNow, v.location)
	slotDay := truncateToDay(slotDate, v.location)

	switch {
	case slotDay.After(today):
		return nil
	case slotDay.Before(today):
		return ErrDateInPast
	}

	if slotStart.Sub(localNow) < v.minLead {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, int(v.minLead.Minutes()))
	}

	return nil
}

// truncateToDay обнуляет время, оставляя только дату в локации loc
func truncateToDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
