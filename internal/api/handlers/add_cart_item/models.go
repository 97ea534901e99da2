package add_cart_item

import (
	"github.com/m04kA/SMC-CartService/internal/domain"
	addCartItem "github.com/m04kA/SMC-CartService/internal/usecase/add_cart_item"
)

// AddCartItemRequest HTTP request model
type AddCartItemRequest struct {
	RoomID         int64                  `json:"roomId"`
	RoomName       string                 `json:"roomName"`
	Photo          string                 `json:"photo,omitempty"`
	Date           string                 `json:"date"` // "2025-01-01"
	Time           string                 `json:"time"` // "09:00 - 10:00"
	BasePrice      float64                `json:"basePrice"`
	TotalPrice     float64                `json:"totalPrice"`
	ExpertServices []domain.ExpertService `json:"expertServices"`
	ExtraServices  []domain.ExtraService  `json:"extraServices"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddCartItemRequest) ToUseCaseRequest() *addCartItem.Request {
	return &addCartItem.Request{
		RoomID:         r.RoomID,
		RoomName:       r.RoomName,
		Photo:          r.Photo,
		Date:           r.Date,
		Time:           r.Time,
		BasePrice:      r.BasePrice,
		TotalPrice:     r.TotalPrice,
		ExpertServices: r.ExpertServices,
		ExtraServices:  r.ExtraServices,
	}
}
