package remove_cart_items

// ItemRef ссылка на позицию корзины по составному ключу
type ItemRef struct {
	RoomID int64
	Date   string
	Time   string
}

// Request модель запроса на удаление позиций
type Request struct {
	Items []ItemRef
}

// Response результат удаления
type Response struct {
	Removed   int // Сколько позиций удалено
	Remaining int // Сколько позиций осталось в корзине
}
