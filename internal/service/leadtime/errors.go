package leadtime

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата слота не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("leadtime: invalid slot date")

	// ErrInvalidTime возвращается, когда время слота не в формате "HH:MM - HH:MM"
	ErrInvalidTime = errors.New("leadtime: invalid slot time")

	// ErrDateInPast возвращается, когда день слота уже прошёл
	ErrDateInPast = errors.New("leadtime: slot date is in the past")

	// ErrTooLateToBook возвращается, когда до начала слота сегодня осталось меньше минимального времени
	ErrTooLateToBook = errors.New("leadtime: too late to book this slot")
)
