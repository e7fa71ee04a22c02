package postgre

import (
	"context"
	"database/sql"

	"shareit/internal/booking/repository"
	"shareit/internal/model"
)

// CreateBooking inserts a new Booking row and returns the created entity.
func (r *implRepository) CreateBooking(ctx context.Context, opt repository.CreateBookingOptions) (model.Booking, error) {
	const query = `
		INSERT INTO bookings (item_id, booker_id, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, item_id, booker_id, status, start_date, end_date`

	var b model.Booking
	err := r.db.QueryRowContext(ctx, query,
		opt.ItemID, opt.BookerID, opt.Status, opt.Start, opt.End,
	).Scan(&b.ID, &b.ItemID, &b.BookerID, &b.Status, &b.Start, &b.End)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return model.Booking{}, repository.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBooking retrieves a single Booking by id.
// Returns zero-value Booking (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repository.GetOneBookingOptions) (model.Booking, error) {
	const query = `
		SELECT id, item_id, booker_id, status, start_date, end_date
		FROM bookings
		WHERE id = $1`

	var b model.Booking
	err := r.db.QueryRowContext(ctx, query, opt.ID).Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.Status, &b.Start, &b.End,
	)
	if err == sql.ErrNoRows {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return model.Booking{}, repository.ErrFailedToGet
	}
	return b, nil
}

// ListBookings returns bookings matching the options, sorted and paginated.
func (r *implRepository) ListBookings(ctx context.Context, opt repository.ListBookingsOptions) ([]model.Booking, error) {
	query, args := buildListBookingsQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.ItemID, &b.BookerID, &b.Status, &b.Start, &b.End); err != nil {
			return nil, repository.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateBookingStatus applies the only mutation a Booking supports.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repository.UpdateBookingStatusOptions) (model.Booking, error) {
	const query = `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
		RETURNING id, item_id, booker_id, status, start_date, end_date`

	var b model.Booking
	err := r.db.QueryRowContext(ctx, query, opt.Status, opt.ID).Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.Status, &b.Start, &b.End,
	)
	if err == sql.ErrNoRows {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return model.Booking{}, repository.ErrFailedToUpdate
	}
	return b, nil
}
