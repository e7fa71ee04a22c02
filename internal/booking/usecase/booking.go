package usecase

import (
	"context"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/pagination"
	userRepo "shareit/internal/user/repository"
)

// Create validates and stores a new WAITING booking.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (booking.BookingDetail, error) {
	booker, err := uc.getUser(ctx, input.BookerID)
	if err != nil {
		return booking.BookingDetail{}, err
	}

	now := time.Now()
	switch {
	case input.Start == nil:
		return booking.BookingDetail{}, booking.ErrStartEmpty
	case input.End == nil:
		return booking.BookingDetail{}, booking.ErrEndEmpty
	case input.Start.Before(now):
		return booking.BookingDetail{}, booking.ErrStartInPast
	case input.End.Before(now):
		return booking.BookingDetail{}, booking.ErrEndInPast
	case input.End.Before(*input.Start):
		return booking.BookingDetail{}, booking.ErrEndBeforeStart
	case input.Start.Equal(*input.End):
		return booking.BookingDetail{}, booking.ErrStartEqualsEnd
	case input.ItemID <= 0:
		return booking.BookingDetail{}, booking.ErrItemIDInvalid
	}

	it, err := uc.items.GetOneItem(ctx, itemRepo.GetOneItemOptions{ID: input.ItemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return booking.BookingDetail{}, err
	}
	if it.ID == 0 {
		return booking.BookingDetail{}, booking.ErrItemNotFound
	}
	if it.OwnerID == input.BookerID {
		return booking.BookingDetail{}, booking.ErrOwnItem
	}
	if !it.Available {
		return booking.BookingDetail{}, booking.ErrItemUnavailable
	}

	created, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		ItemID:   input.ItemID,
		BookerID: input.BookerID,
		Status:   model.BookingStatusWaiting,
		Start:    *input.Start,
		End:      *input.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		return booking.BookingDetail{}, err
	}

	return booking.BookingDetail{Booking: created, Item: it, Booker: booker}, nil
}

// Confirm records the owner's verdict on a booking. An approved booking
// cannot be approved again, though it may still be rejected; a rejected
// one may still be approved.
func (uc *implUseCase) Confirm(ctx context.Context, input booking.ConfirmBookingInput) (booking.BookingDetail, error) {
	b, err := uc.getBooking(ctx, input.BookingID)
	if err != nil {
		return booking.BookingDetail{}, err
	}

	it, err := uc.getItem(ctx, b.ItemID)
	if err != nil {
		return booking.BookingDetail{}, err
	}
	if it.OwnerID != input.OwnerID {
		return booking.BookingDetail{}, booking.ErrBookingNotFound
	}
	if input.Approved && b.Status == model.BookingStatusApproved {
		return booking.BookingDetail{}, booking.ErrAlreadyDecided
	}

	status := model.BookingStatusRejected
	if input.Approved {
		status = model.BookingStatusApproved
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, repo.UpdateBookingStatusOptions{
		ID:     b.ID,
		Status: status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Confirm UpdateBookingStatus: %v", err)
		return booking.BookingDetail{}, err
	}

	booker, err := uc.getUser(ctx, updated.BookerID)
	if err != nil {
		return booking.BookingDetail{}, err
	}
	return booking.BookingDetail{Booking: updated, Item: it, Booker: booker}, nil
}

// GetByID returns a booking to its booker or the item's owner; everyone
// else gets not-found.
func (uc *implUseCase) GetByID(ctx context.Context, viewerID, bookingID int64) (booking.BookingDetail, error) {
	if _, err := uc.getUser(ctx, viewerID); err != nil {
		return booking.BookingDetail{}, err
	}

	b, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return booking.BookingDetail{}, err
	}

	it, err := uc.getItem(ctx, b.ItemID)
	if err != nil {
		return booking.BookingDetail{}, err
	}
	if b.BookerID != viewerID && it.OwnerID != viewerID {
		return booking.BookingDetail{}, booking.ErrBookingNotFound
	}

	booker, err := uc.getUser(ctx, b.BookerID)
	if err != nil {
		return booking.BookingDetail{}, err
	}
	return booking.BookingDetail{Booking: b, Item: it, Booker: booker}, nil
}

// ListByBooker pages through a booker's own bookings, newest start first.
func (uc *implUseCase) ListByBooker(ctx context.Context, bookerID int64, state booking.State, page pagination.Params) ([]booking.BookingDetail, error) {
	booker, err := uc.getUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	opt := repo.ListBookingsOptions{
		BookerID: bookerID,
		OrderBy:  repo.OrderByStartDesc,
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	}
	applyState(&opt, state)

	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByBooker ListBookings: %v", err)
		return nil, err
	}

	details := make([]booking.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		it, err := uc.getItem(ctx, b.ItemID)
		if err != nil {
			return nil, err
		}
		details = append(details, booking.BookingDetail{Booking: b, Item: it, Booker: booker})
	}
	return details, nil
}

// ListByOwner pages through the bookings of all items one owner shares,
// newest start first.
func (uc *implUseCase) ListByOwner(ctx context.Context, ownerID int64, state booking.State, page pagination.Params) ([]booking.BookingDetail, error) {
	if _, err := uc.getUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	opt := repo.ListBookingsOptions{
		OwnerID: ownerID,
		OrderBy: repo.OrderByStartDesc,
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	}
	applyState(&opt, state)

	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner ListBookings: %v", err)
		return nil, err
	}

	details := make([]booking.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		it, err := uc.getItem(ctx, b.ItemID)
		if err != nil {
			return nil, err
		}
		booker, err := uc.getUser(ctx, b.BookerID)
		if err != nil {
			return nil, err
		}
		details = append(details, booking.BookingDetail{Booking: b, Item: it, Booker: booker})
	}
	return details, nil
}

// applyState narrows a listing to one time or status slice.
func applyState(opt *repo.ListBookingsOptions, state booking.State) {
	now := time.Now()
	switch state {
	case booking.StateCurrent:
		opt.CurrentAt = &now
	case booking.StatePast:
		opt.EndBefore = &now
	case booking.StateFuture:
		opt.StartAfter = &now
	case booking.StateWaiting:
		opt.Status = model.BookingStatusWaiting
	case booking.StateRejected:
		opt.Status = model.BookingStatusRejected
	}
}

// getUser fetches a user or fails with ErrUserNotFound.
func (uc *implUseCase) getUser(ctx context.Context, userID int64) (model.User, error) {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getUser GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, booking.ErrUserNotFound
	}
	return u, nil
}

// getItem fetches an item or fails with ErrItemNotFound.
func (uc *implUseCase) getItem(ctx context.Context, itemID int64) (model.Item, error) {
	it, err := uc.items.GetOneItem(ctx, itemRepo.GetOneItemOptions{ID: itemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, booking.ErrItemNotFound
	}
	return it, nil
}

// getBooking fetches a booking or fails with ErrBookingNotFound.
func (uc *implUseCase) getBooking(ctx context.Context, bookingID int64) (model.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: bookingID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getBooking GetOneBooking: %v", err)
		return model.Booking{}, err
	}
	if b.ID == 0 {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}
