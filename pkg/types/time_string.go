package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesInDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не похожа на "HH:MM"
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток в формате "HH:MM" (например, "09:30")
//
// Компонент минут может отсутствовать ("9" трактуется как 09:00),
// так исторически записывает время витрина.
type TimeString string

// Minutes возвращает количество минут от полуночи (hours*60 + minutes)
func (t TimeString) Minutes() (int, error) {
	raw := strings.TrimSpace(string(t))
	if raw == "" {
		return 0, ErrInvalidTimeFormat
	}

	parts := strings.Split(raw, ":")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	hours, err := parseClockPart(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	minutes := 0
	if len(parts) == 2 {
		minutes, err = parseClockPart(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
		}
	}

	if hours > 24 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, raw)
	}

	total := hours*60 + minutes
	if total > minutesInDay {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, raw)
	}

	return total, nil
}

// Validate проверяет, что строка является корректным временем суток
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// OnDate возвращает конкретный момент времени: дата date, время t по часам локации loc
// В дни перевода часов момент соответствует показанию часов, а не сдвигу от полуночи
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc), nil
}

func (t TimeString) String() string {
	return string(t)
}

func parseClockPart(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidTimeFormat
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	return strconv.Atoi(s)
}
