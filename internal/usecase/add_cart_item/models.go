package add_cart_item

import "github.com/m04kA/SMC-CartService/internal/domain"

// Request модель запроса на добавление слота в корзину
type Request struct {
	RoomID         int64  // ID комнаты
	RoomName       string // Название комнаты
	Photo          string // Фото (опционально)
	Date           string // Дата "YYYY-MM-DD"
	Time           string // Интервал "HH:MM - HH:MM"
	BasePrice      float64
	TotalPrice     float64
	ExpertServices []domain.ExpertService
	ExtraServices  []domain.ExtraService
}

// Response сохранённая позиция корзины
type Response struct {
	Item domain.CartLineItem
}
