package prepare_checkout

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CartService/internal/api/handlers"
	prepareCheckout "github.com/m04kA/SMC-CartService/internal/usecase/prepare_checkout"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите roomId, date и time группы"
	msgNoItems            = "в корзине нет позиций для оформления"
	msgInvalidTime        = "у позиции некорректное время, удалите её из корзины"
	msgLeadTimeFormat     = "бронирование «%s» на %s %s уже нельзя оформить: до начала осталось слишком мало времени"
)

type Handler struct {
	useCase PrepareCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase PrepareCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cart/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PrepareCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var violation *prepareCheckout.LeadTimeViolationError

		switch {
		case errors.As(err, &violation):
			h.logger.Warn("POST /cart/checkout - Lead time violation: room=%q, start=%s", violation.RoomName, violation.StartTime)
			handlers.RespondConflict(w, fmt.Sprintf(msgLeadTimeFormat, violation.RoomName, violation.Date, violation.StartTime))

		case errors.Is(err, prepareCheckout.ErrNoItems):
			h.logger.Warn("POST /cart/checkout - No items: room_id=%d, date=%s, time=%s", req.RoomID, req.Date, req.Time)
			handlers.RespondNotFound(w, msgNoItems)

		case errors.Is(err, prepareCheckout.ErrInvalidTime):
			h.logger.Warn("POST /cart/checkout - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, prepareCheckout.ErrInvalidInput):
			h.logger.Warn("POST /cart/checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cart/checkout - Failed to prepare checkout: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/checkout - Checkout staged: room_id=%d, date=%s, time=%s", booking.RoomID, booking.Date, booking.Time)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
