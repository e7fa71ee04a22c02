package booking

import (
	"time"

	"shareit/internal/model"
)

// CreateBookingInput carries the fields for requesting a rental.
// Start and End are pointers so absent values can be rejected explicitly.
type CreateBookingInput struct {
	BookerID int64
	ItemID   int64
	Start    *time.Time
	End      *time.Time
}

// ConfirmBookingInput carries the owner's verdict on a waiting booking.
type ConfirmBookingInput struct {
	OwnerID   int64
	BookingID int64
	Approved  bool
}

// BookingDetail is a booking joined with its item and booker for output.
type BookingDetail struct {
	Booking model.Booking
	Item    model.Item
	Booker  model.User
}

// State is a listing filter over bookings, derived from status and time.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState validates a raw state string, defaulting blank to ALL.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch s := State(raw); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", UnknownStateError{State: raw}
	}
}
