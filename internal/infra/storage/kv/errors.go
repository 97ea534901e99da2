package kv

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключа нет в хранилище
	ErrKeyNotFound = errors.New("kv.storage: key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("kv.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kv.storage: failed to scan row")

	// ErrRedis возвращается при ошибках работы с Redis
	ErrRedis = errors.New("kv.storage: redis error")

	// ErrSubscribe возвращается, когда не удалось подписаться на канал
	ErrSubscribe = errors.New("kv.storage: failed to subscribe")
)
