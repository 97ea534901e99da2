package cart_events

type CartNotifier interface {
	Subscribe() (<-chan struct{}, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
