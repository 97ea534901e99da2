package get_cart

import "github.com/m04kA/SMC-CartService/internal/domain"

// Group объединённый блок посещения с признаком возможности оформления
type Group struct {
	domain.MergedGroup
	Key      string // Составной ключ группы, по нему оформляется заказ
	Bookable bool   // Можно ли оформить группу прямо сейчас
}

// Response представление корзины
type Response struct {
	Groups      []Group
	ItemsCount  int     // Количество исходных позиций
	GroupsCount int     // Количество групп
	TotalPrice  float64 // Сумма totalPrice всех групп
}
