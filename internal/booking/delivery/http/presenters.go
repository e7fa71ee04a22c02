package http

import (
	"time"

	"shareit/internal/booking"
	"shareit/internal/pagination"
)

// --- Request DTOs ---

type createReq struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

func (r createReq) toInput(bookerID int64) booking.CreateBookingInput {
	return booking.CreateBookingInput{
		BookerID: bookerID,
		ItemID:   r.ItemID,
		Start:    r.Start,
		End:      r.End,
	}
}

type listReq struct {
	State string `form:"state"`
	From  *int   `form:"from"`
	Size  *int   `form:"size"`
}

func (r listReq) page() pagination.Params {
	return pagination.New(r.From, r.Size)
}

// --- Response DTOs ---

type itemBriefResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookerBriefResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID     int64           `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   itemBriefResp   `json:"item"`
	Booker bookerBriefResp `json:"booker"`
}

func newBookingResp(d booking.BookingDetail) bookingResp {
	return bookingResp{
		ID:     d.Booking.ID,
		Start:  d.Booking.Start,
		End:    d.Booking.End,
		Status: string(d.Booking.Status),
		Item: itemBriefResp{
			ID:   d.Item.ID,
			Name: d.Item.Name,
		},
		Booker: bookerBriefResp{
			ID:   d.Booker.ID,
			Name: d.Booker.Name,
		},
	}
}

func newBookingListResp(details []booking.BookingDetail) []bookingResp {
	resp := make([]bookingResp, len(details))
	for i, d := range details {
		resp[i] = newBookingResp(d)
	}
	return resp
}
