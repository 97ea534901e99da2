package remove_cart_items

import (
	removeCartItems "github.com/m04kA/SMC-CartService/internal/usecase/remove_cart_items"
)

// ItemRef ссылка на позицию корзины
type ItemRef struct {
	RoomID int64  `json:"roomId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// RemoveCartItemsRequest HTTP request model
type RemoveCartItemsRequest struct {
	Items []ItemRef `json:"items"`
}

// RemoveCartItemsResponse HTTP response model
type RemoveCartItemsResponse struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RemoveCartItemsRequest) ToUseCaseRequest() *removeCartItems.Request {
	items := make([]removeCartItems.ItemRef, 0, len(r.Items))
	for _, ref := range r.Items {
		items = append(items, removeCartItems.ItemRef{
			RoomID: ref.RoomID,
			Date:   ref.Date,
			Time:   ref.Time,
		})
	}
	return &removeCartItems.Request{Items: items}
}
