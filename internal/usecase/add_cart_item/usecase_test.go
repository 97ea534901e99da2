package add_cart_item

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingCart struct {
	items []domain.CartLineItem
	err   error
}

func (c *recordingCart) Append(_ context.Context, item domain.CartLineItem) error {
	if c.err != nil {
		return c.err
	}
	c.items = append(c.items, item)
	return nil
}

func validRequest() *Request {
	return &Request{
		RoomID:     1,
		RoomName:   " Sauna ",
		Date:       "2025-01-01",
		Time:       " 09:00 - 10:00 ",
		BasePrice:  1000,
		TotalPrice: 1300,
		ExpertServices: []domain.ExpertService{
			{Name: "Masseur", Price: 200},
		},
		ExtraServices: []domain.ExtraService{
			{Name: "Tea", Price: 50, Quantity: 2},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	cart := &recordingCart{}
	uc := NewUseCase(cart, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, cart.items, 1)
	assert.Equal(t, "Sauna", resp.Item.RoomName)
	assert.Equal(t, "09:00 - 10:00", resp.Item.Time)
	assert.Equal(t, "1_2025-01-01_09:00 - 10:00", resp.Item.Key())
	assert.Equal(t, cart.items[0], resp.Item)
}

func TestUseCase_ExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"no room", func(r *Request) { r.RoomID = 0 }, ErrInvalidInput},
		{"bad date", func(r *Request) { r.Date = "01.01.2025" }, ErrInvalidDate},
		{"bad time", func(r *Request) { r.Time = "10:00 - 09:00" }, ErrInvalidTime},
		{"empty time", func(r *Request) { r.Time = "" }, ErrInvalidTime},
		{"negative price", func(r *Request) { r.BasePrice = -1 }, ErrInvalidInput},
		{"total below base", func(r *Request) { r.TotalPrice = 10 }, ErrInvalidInput},
		{"unnamed service", func(r *Request) { r.ExpertServices[0].Name = "  " }, ErrInvalidInput},
		{"huge quantity", func(r *Request) { r.ExtraServices[0].Quantity = domain.MaxQuantity + 1 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &recordingCart{}
			req := validRequest()
			tt.mutate(req)

			_, err := NewUseCase(cart, nopLogger{}).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, cart.items)
		})
	}
}

func TestUseCase_ExecuteStorageFailure(t *testing.T) {
	cart := &recordingCart{err: errors.New("redis is down")}

	_, err := NewUseCase(cart, nopLogger{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
