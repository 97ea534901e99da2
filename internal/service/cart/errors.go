package cart

import "errors"

var (
	// ErrStorage возвращается, когда хранилище не смогло выполнить операцию
	ErrStorage = errors.New("cart: storage error")

	// ErrEncode возвращается, когда данные не удалось сериализовать
	ErrEncode = errors.New("cart: failed to encode payload")

	// ErrCorruptedPayload возвращается, когда сохранённые данные не удалось разобрать
	ErrCorruptedPayload = errors.New("cart: corrupted payload")
)
