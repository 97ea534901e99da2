package add_cart_item

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	if len(req.RoomName) > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: roomName must be at most %d characters", ErrInvalidInput, domain.MaxRoomNameLength)
	}

	if _, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if _, err := types.ParseTimeRange(req.Time); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if req.BasePrice < 0 {
		return fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}

	// totalPrice включает стоимость всех услуг поверх basePrice
	if req.TotalPrice < req.BasePrice {
		return fmt.Errorf("%w: totalPrice must not be less than basePrice", ErrInvalidInput)
	}

	if len(req.ExpertServices)+len(req.ExtraServices) > domain.MaxServices {
		return fmt.Errorf("%w: at most %d services per slot", ErrInvalidInput, domain.MaxServices)
	}

	for _, s := range req.ExpertServices {
		if err := validateService(s.Name, s.Price); err != nil {
			return err
		}
	}

	for _, s := range req.ExtraServices {
		if err := validateService(s.Name, s.Price); err != nil {
			return err
		}
		if s.Quantity < 0 || s.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: quantity of %q must be within [0, %d]", ErrInvalidInput, s.Name, domain.MaxQuantity)
		}
	}

	return nil
}

func validateService(name string, price float64) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if len(trimmed) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: service name must be at most %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}
	if price < 0 {
		return fmt.Errorf("%w: price of %q must not be negative", ErrInvalidInput, trimmed)
	}
	return nil
}
