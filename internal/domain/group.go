package domain

// MergedGroup is a contiguous visit block for one room on one date.
// Groups are derived from the cart on every read and never persisted.
type MergedGroup struct {
	RoomID         int64           `json:"roomId"`
	RoomName       string          `json:"roomName"`
	Photo          string          `json:"photo,omitempty"`
	Date           string          `json:"date"`
	Time           string          `json:"time"` // union span "earliest start - latest end"
	BasePrice      float64         `json:"basePrice"`
	TotalPrice     float64         `json:"totalPrice"`
	ExpertServices []ExpertService `json:"expertServices"`
	ExtraServices  []ExtraService  `json:"extraServices"`
	OriginalItems  []CartLineItem  `json:"originalItems"`

	// InvalidTime is set for a one-item group whose time range could not be parsed
	InvalidTime bool `json:"invalidTime,omitempty"`
	// Overlapping is set when the group intersects an earlier group of the same room and date
	Overlapping bool `json:"overlapping,omitempty"`
}

// Key identifies the group by room, date and merged span
func (g MergedGroup) Key() string {
	return ItemKey(g.RoomID, g.Date, g.Time)
}

// IsEmpty returns true if the group has nothing left to check out
func (g MergedGroup) IsEmpty() bool {
	return len(g.OriginalItems) == 0
}

// ItemKeys returns the composite keys of all original items
func (g MergedGroup) ItemKeys() ItemKeySet {
	set := make(ItemKeySet, len(g.OriginalItems))
	for _, item := range g.OriginalItems {
		set.Add(item)
	}
	return set
}

// ExpertServicesTotal sums expert service prices
func (g MergedGroup) ExpertServicesTotal() float64 {
	total := 0.0
	for _, s := range g.ExpertServices {
		total += s.Price
	}
	return total
}

// ExtraServicesTotal sums extra service prices multiplied by their quantity
func (g MergedGroup) ExtraServicesTotal() float64 {
	total := 0.0
	for _, s := range g.ExtraServices {
		total += s.Price * float64(s.EffectiveQuantity())
	}
	return total
}

// ProcessedBooking is the payload handed to the payment flow for a single group
type ProcessedBooking struct {
	RoomID         int64           `json:"roomId"`
	RoomName       string          `json:"roomName"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	BasePrice      float64         `json:"basePrice"`
	TotalPrice     float64         `json:"totalPrice"`
	ExpertServices []ExpertService `json:"expertServices"`
	ExtraServices  []ExtraService  `json:"extraServices"`
}
