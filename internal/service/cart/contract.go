package cart

import "context"

// Store хранилище ключ-значение, в котором лежит корзина
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Publisher хранилище, умеющее рассылать уведомления другим процессам
type Publisher interface {
	Publish(ctx context.Context, channel string) error
}

// Subscriber хранилище, умеющее сообщать об изменениях из других процессов
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan struct{}, error)
}

// Metrics интерфейс для метрик корзины
type Metrics interface {
	StorageFault(kind string)
	CartReload(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
