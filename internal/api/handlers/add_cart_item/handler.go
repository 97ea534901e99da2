package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CartService/internal/api/handlers"
	addCartItem "github.com/m04kA/SMC-CartService/internal/usecase/add_cart_item"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные слота"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM - HH:MM"
)

type Handler struct {
	useCase AddCartItemUseCase
	logger  Logger
}

func NewHandler(useCase AddCartItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, addCartItem.ErrInvalidDate):
			h.logger.Warn("POST /cart/items - Invalid date: room_id=%d, date=%q", req.RoomID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, addCartItem.ErrInvalidTime):
			h.logger.Warn("POST /cart/items - Invalid time: room_id=%d, time=%q", req.RoomID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, addCartItem.ErrInvalidInput):
			h.logger.Warn("POST /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cart/items - Failed to add item: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Item added: key=%s", result.Item.Key())
	handlers.RespondJSON(w, http.StatusCreated, result.Item)
}
