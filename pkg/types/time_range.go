package types

import (
	"errors"
	"fmt"
	"strings"
)

// TimeRangeSeparator разделитель начала и конца интервала
const TimeRangeSeparator = " - "

// ErrInvalidTimeRange возвращается, когда строка интервала некорректна
var ErrInvalidTimeRange = errors.New("invalid time range")

// TimeRange интервал времени в пределах одного дня, "HH:MM - HH:MM"
type TimeRange struct {
	Start TimeString
	End   TimeString

	startMinutes int
	endMinutes   int
}

// ParseTimeRange разбирает строку вида "09:00 - 10:00"
// Строка предварительно обрезается; начало должно быть строго раньше конца
func ParseTimeRange(s string) (TimeRange, error) {
	raw := strings.TrimSpace(s)
	parts := strings.Split(raw, TimeRangeSeparator)
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, raw)
	}

	start := TimeString(strings.TrimSpace(parts[0]))
	end := TimeString(strings.TrimSpace(parts[1]))

	startMinutes, err := start.Minutes()
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}

	endMinutes, err := end.Minutes()
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}

	if startMinutes >= endMinutes {
		return TimeRange{}, fmt.Errorf("%w: start %q is not before end %q", ErrInvalidTimeRange, start, end)
	}

	return TimeRange{
		Start:        start,
		End:          end,
		startMinutes: startMinutes,
		endMinutes:   endMinutes,
	}, nil
}

// StartMinutes минуты от полуночи для начала интервала
func (r TimeRange) StartMinutes() int {
	return r.startMinutes
}

// EndMinutes минуты от полуночи для конца интервала
func (r TimeRange) EndMinutes() int {
	return r.endMinutes
}

// Touches возвращает true, если next начинается ровно там, где заканчивается r
func (r TimeRange) Touches(next TimeRange) bool {
	return r.endMinutes == next.startMinutes
}

// Overlaps возвращает true, если интервалы действительно пересекаются
// Граничащие интервалы (10:00-11:00 и 11:00-12:00) не пересекаются
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.startMinutes < other.endMinutes && r.endMinutes > other.startMinutes
}

// ExtendTo возвращает интервал [r.Start, next.End]
func (r TimeRange) ExtendTo(next TimeRange) TimeRange {
	return TimeRange{
		Start:        r.Start,
		End:          next.End,
		startMinutes: r.startMinutes,
		endMinutes:   next.endMinutes,
	}
}

func (r TimeRange) String() string {
	return string(r.Start) + TimeRangeSeparator + string(r.End)
}
