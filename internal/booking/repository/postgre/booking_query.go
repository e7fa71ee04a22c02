package postgre

import (
	"fmt"
	"strings"

	"shareit/internal/booking/repository"
)

// buildListBookingsQuery builds the full SELECT for ListBookings. The owner
// filter reaches through the booked item, so the items table is joined only
// when needed.
func buildListBookingsQuery(opt repository.ListBookingsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	arg := func(cond string, value any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, value)
		idx++
	}

	if opt.BookerID != 0 {
		arg("b.booker_id = $%d", opt.BookerID)
	}
	if opt.OwnerID != 0 {
		arg("i.user_id = $%d", opt.OwnerID)
	}
	if opt.ItemID != 0 {
		arg("b.item_id = $%d", opt.ItemID)
	}
	if opt.Status != "" {
		arg("b.status = $%d", opt.Status)
	}
	if opt.CurrentAt != nil {
		arg("b.start_date <= $%d", *opt.CurrentAt)
		arg("b.end_date >= $%d", *opt.CurrentAt)
	}
	if opt.StartAfter != nil {
		arg("b.start_date > $%d", *opt.StartAfter)
	}
	if opt.EndBefore != nil {
		arg("b.end_date < $%d", *opt.EndBefore)
	}

	var sb strings.Builder
	sb.WriteString("SELECT b.id, b.item_id, b.booker_id, b.status, b.start_date, b.end_date FROM bookings b")
	if opt.OwnerID != 0 {
		sb.WriteString(" JOIN items i ON i.id = b.item_id")
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "b.start_date DESC"
	}
	sb.WriteString(" ORDER BY " + orderBy)

	if opt.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return sb.String(), args
}
