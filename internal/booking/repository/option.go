package repository

import (
	"time"

	"shareit/internal/model"
)

// Sort orders accepted by ListBookingsOptions.OrderBy.
const (
	OrderByStartDesc = "b.start_date DESC"
	OrderByStartAsc  = "b.start_date ASC"
	OrderByEndDesc   = "b.end_date DESC"
)

// CreateBookingOptions holds parameters for inserting a new Booking.
type CreateBookingOptions struct {
	ItemID   int64
	BookerID int64
	Status   model.BookingStatus
	Start    time.Time
	End      time.Time
}

// GetOneBookingOptions holds filter parameters for fetching a single Booking.
type GetOneBookingOptions struct {
	ID int64
}

// ListBookingsOptions holds filter, sort and pagination parameters for
// listing Bookings. All non-zero fields are applied as AND conditions.
// OwnerID filters through the booked item's owner.
type ListBookingsOptions struct {
	BookerID int64
	OwnerID  int64
	ItemID   int64
	Status   model.BookingStatus

	CurrentAt  *time.Time // start <= t AND end >= t
	StartAfter *time.Time
	EndBefore  *time.Time

	OrderBy string // defaults to "start_date DESC"
	Limit   int
	Offset  int
}

// UpdateBookingStatusOptions holds parameters for the single allowed
// mutation of a Booking.
type UpdateBookingStatusOptions struct {
	ID     int64
	Status model.BookingStatus
}
