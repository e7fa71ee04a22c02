package booking

import (
	"errors"
	"fmt"
)

var (
	ErrStartEmpty      = errors.New("The booking start time field cannot be empty")
	ErrEndEmpty        = errors.New("The booking end time field cannot be empty")
	ErrStartInPast     = errors.New("The booking start time can't be in past")
	ErrEndInPast       = errors.New("The booking end time can't be in past")
	ErrEndBeforeStart  = errors.New("The booking end time must be after then start time")
	ErrStartEqualsEnd  = errors.New("The booking start time and end time can't be the same")
	ErrItemIDInvalid   = errors.New("The item id error")
	ErrItemUnavailable = errors.New("This item isn't available")

	// ErrOwnItem rejects renting one's own item. Reported as not-found so
	// owners probing the endpoint learn nothing extra.
	ErrOwnItem = errors.New("This item already belongs to you, so you can't rent it")

	ErrUserNotFound = errors.New("User not found")
	ErrItemNotFound = errors.New("Unknown item id")

	// ErrBookingNotFound also covers bookings the viewer may not see.
	ErrBookingNotFound = errors.New("Booking id error")

	ErrAlreadyDecided = errors.New("Approved error")
)

// UnknownStateError is returned for an unrecognized listing state filter.
type UnknownStateError struct {
	State string
}

func (e UnknownStateError) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.State)
}
