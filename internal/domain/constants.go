package domain

import "time"

// Lead time policy
const (
	DefaultMinLeadTimeMinutes = 30 // same-day slots need at least 30 minutes notice
	MaxMinLeadTimeMinutes     = 1440
)

// Change detection
const (
	DefaultPollInterval = 2 * time.Second
	MinPollInterval     = 100 * time.Millisecond
)

// Persisted keys shared with the storefront and the payment flow
const (
	CartKey              = "cart"
	ProcessedBookingsKey = "processedBookings"
	PaymentStateKey      = "paymentState"
	SelectedBookingKey   = "selectedBooking"
)

// CartUpdatedEvent is the payload-less broadcast published after every cart change
const CartUpdatedEvent = "cartUpdated"

// DateFormat is the slot date layout (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Business validation constants
const (
	MaxRoomNameLength    = 200
	MaxServiceNameLength = 200
	MaxServices          = 50
	MaxQuantity          = 1000
)

// DefaultExtraQuantity is used when an extra service has no quantity
const DefaultExtraQuantity = 1
