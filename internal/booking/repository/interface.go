package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the booking domain data store.
type Repository interface {
	BookingRepository
}

// BookingRepository defines all data access methods for the Booking entity.
type BookingRepository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (model.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, opt UpdateBookingStatusOptions) (model.Booking, error)
}
