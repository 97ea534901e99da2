package get_cart

import (
	"net/http"

	"github.com/m04kA/SMC-CartService/internal/api/handlers"
)

type Handler struct {
	useCase GetCartUseCase
	logger  Logger
}

func NewHandler(useCase GetCartUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /cart - Failed to build cart view: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
