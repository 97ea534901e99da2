package domain

import (
	"fmt"
	"strings"
)

// ExpertService is a specialist attached to a booked slot (masseur, stylist, ...)
type ExpertService struct {
	Name  string  `json:"name"`
	ID    *int64  `json:"id,omitempty"`
	Price float64 `json:"price"`
}

// ExtraService is a countable add-on attached to a booked slot (towels, tea, ...)
type ExtraService struct {
	Name     string  `json:"name"`
	ID       *int64  `json:"id,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

// EffectiveQuantity returns the quantity, treating an absent (or non-positive) value as 1
func (s ExtraService) EffectiveQuantity() int {
	if s.Quantity <= 0 {
		return DefaultExtraQuantity
	}
	return s.Quantity
}

// SameExpertService reports whether two expert services are the same service.
// An id comparison wins when both sides carry an id, otherwise names are compared
// case-insensitively after trimming.
func SameExpertService(a, b ExpertService) bool {
	return sameService(a.ID, a.Name, b.ID, b.Name)
}

// SameExtraService applies the expert service rule to extra services
func SameExtraService(a, b ExtraService) bool {
	return sameService(a.ID, a.Name, b.ID, b.Name)
}

func sameService(aID *int64, aName string, bID *int64, bName string) bool {
	if aID != nil && bID != nil {
		return *aID == *bID
	}
	return NormalizeServiceName(aName) == NormalizeServiceName(bName)
}

// NormalizeServiceName is the dedup form of a service name
func NormalizeServiceName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CartLineItem is one originally booked slot stored in the cart
type CartLineItem struct {
	RoomID         int64           `json:"roomId"`
	RoomName       string          `json:"roomName"`
	Photo          string          `json:"photo,omitempty"`
	Date           string          `json:"date"` // "2025-01-01"
	Time           string          `json:"time"` // "09:00 - 10:00"
	BasePrice      float64         `json:"basePrice"`
	TotalPrice     float64         `json:"totalPrice"`
	ExpertServices []ExpertService `json:"expertServices"`
	ExtraServices  []ExtraService  `json:"extraServices"`
}

// Key returns the composite removal key `${roomId}_${date}_${time}`
func (i CartLineItem) Key() string {
	return ItemKey(i.RoomID, i.Date, i.Time)
}

// GroupKey returns the bucket key used by the grouping engine
func (i CartLineItem) GroupKey() string {
	return fmt.Sprintf("%d_%s", i.RoomID, i.Date)
}

// HasRequiredFields reports whether the item can take part in grouping at all
func (i CartLineItem) HasRequiredFields() bool {
	return i.RoomID > 0 && strings.TrimSpace(i.Date) != "" && strings.TrimSpace(i.Time) != ""
}

// ItemKey builds the composite key from its parts; time is the full "HH:MM - HH:MM" string
func ItemKey(roomID int64, date, timeRange string) string {
	return fmt.Sprintf("%d_%s_%s", roomID, date, timeRange)
}

// ItemKeySet is a set of composite keys
type ItemKeySet map[string]struct{}

// NewItemKeySet builds a set from composite keys
func NewItemKeySet(keys ...string) ItemKeySet {
	set := make(ItemKeySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Add puts the key of the item into the set
func (s ItemKeySet) Add(item CartLineItem) {
	s[item.Key()] = struct{}{}
}

// Contains reports whether the item's key is in the set
func (s ItemKeySet) Contains(item CartLineItem) bool {
	_, ok := s[item.Key()]
	return ok
}
