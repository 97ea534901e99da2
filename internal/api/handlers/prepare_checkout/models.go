package prepare_checkout

import (
	prepareCheckout "github.com/m04kA/SMC-CartService/internal/usecase/prepare_checkout"
)

// PrepareCheckoutRequest HTTP request model
// time - объединённый интервал группы из GET /cart
type PrepareCheckoutRequest struct {
	RoomID int64  `json:"roomId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PrepareCheckoutRequest) ToUseCaseRequest() *prepareCheckout.Request {
	return &prepareCheckout.Request{
		RoomID: r.RoomID,
		Date:   r.Date,
		Time:   r.Time,
	}
}
