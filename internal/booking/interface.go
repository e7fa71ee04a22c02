package booking

import (
	"context"

	"shareit/internal/pagination"
)

type UseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (BookingDetail, error)

	// Confirm moves a WAITING booking to APPROVED or REJECTED. Only the
	// item's owner may decide, and only once.
	Confirm(ctx context.Context, input ConfirmBookingInput) (BookingDetail, error)

	// GetByID returns a booking visible to its booker or the item's owner.
	GetByID(ctx context.Context, viewerID, bookingID int64) (BookingDetail, error)

	ListByBooker(ctx context.Context, bookerID int64, state State, page pagination.Params) ([]BookingDetail, error)
	ListByOwner(ctx context.Context, ownerID int64, state State, page pagination.Params) ([]BookingDetail, error)
}
