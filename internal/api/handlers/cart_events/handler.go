package cart_events

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CartService/internal/api/handlers"
	"github.com/m04kA/SMC-CartService/internal/domain"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"
	defaultKeepAlive        = 25 * time.Second
)

type Handler struct {
	notifier  CartNotifier
	keepAlive time.Duration
	logger    Logger
}

func NewHandler(notifier CartNotifier, logger Logger) *Handler {
	return &Handler{
		notifier:  notifier,
		keepAlive: defaultKeepAlive,
		logger:    logger,
	}
}

// Handle GET /api/v1/cart/events
// Одно событие cartUpdated без данных на каждое изменение корзины; клиент перечитывает GET /cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /cart/events - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	updates, unsubscribe := h.notifier.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-updates:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: {}\n\n", domain.CartUpdatedEvent); err != nil {
				return
			}
			flusher.Flush()
		case <-ticker.C:
			// комментарий не даёт прокси закрыть простаивающее соединение
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
