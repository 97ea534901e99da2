package remove_cart_items

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CartService/internal/api/handlers"
	removeCartItems "github.com/m04kA/SMC-CartService/internal/usecase/remove_cart_items"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItems       = "укажите позиции для удаления: roomId, date и time"
)

type Handler struct {
	useCase RemoveCartItemsUseCase
	logger  Logger
}

func NewHandler(useCase RemoveCartItemsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RemoveCartItemsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, removeCartItems.ErrInvalidInput):
			h.logger.Warn("DELETE /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItems)

		default:
			h.logger.Error("DELETE /cart/items - Failed to remove items: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &RemoveCartItemsResponse{
		Removed:   result.Removed,
		Remaining: result.Remaining,
	})
}
