package model

import "time"

// BookingStatus is the stored approval status of a booking.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// Booking joins a booker, an item and a date range. It is created WAITING
// and moved once by the item's owner to APPROVED or REJECTED.
type Booking struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Status   BookingStatus
	Start    time.Time
	End      time.Time
}
