package cart

import "github.com/m04kA/SMC-CartService/internal/domain"

// RemoveResult результат удаления позиций
type RemoveResult struct {
	Removed   int
	Remaining []domain.CartLineItem
}
