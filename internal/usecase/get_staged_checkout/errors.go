package get_staged_checkout

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_staged_checkout: internal error")
)
