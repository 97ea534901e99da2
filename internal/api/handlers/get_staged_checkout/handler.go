package get_staged_checkout

import (
	"net/http"

	"github.com/m04kA/SMC-CartService/internal/api/handlers"
)

type Handler struct {
	useCase GetStagedCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase GetStagedCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkout/staged
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /checkout/staged - Failed to read staged bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, bookings)
}
