package get_cart

import (
	"github.com/m04kA/SMC-CartService/internal/domain"
	getCart "github.com/m04kA/SMC-CartService/internal/usecase/get_cart"
)

// GroupResponse HTTP модель объединённого блока посещения
type GroupResponse struct {
	Key            string                 `json:"key"`
	RoomID         int64                  `json:"roomId"`
	RoomName       string                 `json:"roomName"`
	Photo          string                 `json:"photo,omitempty"`
	Date           string                 `json:"date"`
	Time           string                 `json:"time"`
	BasePrice      float64                `json:"basePrice"`
	TotalPrice     float64                `json:"totalPrice"`
	ExpertServices []domain.ExpertService `json:"expertServices"`
	ExtraServices  []domain.ExtraService  `json:"extraServices"`
	OriginalItems  []domain.CartLineItem  `json:"originalItems"`
	Bookable       bool                   `json:"bookable"`
	InvalidTime    bool                   `json:"invalidTime"`
	Overlapping    bool                   `json:"overlapping"`
}

// CartResponse HTTP модель корзины
type CartResponse struct {
	Groups      []GroupResponse `json:"groups"`
	ItemsCount  int             `json:"itemsCount"`
	GroupsCount int             `json:"groupsCount"`
	TotalPrice  float64         `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCart.Response) *CartResponse {
	groups := make([]GroupResponse, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		groups = append(groups, GroupResponse{
			Key:            g.Key,
			RoomID:         g.RoomID,
			RoomName:       g.RoomName,
			Photo:          g.Photo,
			Date:           g.Date,
			Time:           g.Time,
			BasePrice:      g.BasePrice,
			TotalPrice:     g.TotalPrice,
			ExpertServices: g.ExpertServices,
			ExtraServices:  g.ExtraServices,
			OriginalItems:  g.OriginalItems,
			Bookable:       g.Bookable,
			InvalidTime:    g.InvalidTime,
			Overlapping:    g.Overlapping,
		})
	}

	return &CartResponse{
		Groups:      groups,
		ItemsCount:  resp.ItemsCount,
		GroupsCount: resp.GroupsCount,
		TotalPrice:  resp.TotalPrice,
	}
}
