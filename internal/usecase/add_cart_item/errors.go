package add_cart_item

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_cart_item: invalid input data")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("add_cart_item: invalid date")

	// ErrInvalidTime возвращается, когда время не в формате "HH:MM - HH:MM"
	ErrInvalidTime = errors.New("add_cart_item: invalid time range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_cart_item: internal error")
)
