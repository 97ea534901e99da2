package remove_cart_items

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}

	for i, ref := range req.Items {
		if ref.RoomID <= 0 {
			return fmt.Errorf("%w: items[%d].roomId must be positive", ErrInvalidInput, i)
		}
		if strings.TrimSpace(ref.Date) == "" || strings.TrimSpace(ref.Time) == "" {
			return fmt.Errorf("%w: items[%d] requires date and time", ErrInvalidInput, i)
		}
	}

	return nil
}
