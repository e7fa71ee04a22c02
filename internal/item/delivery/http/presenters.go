package http

import (
	"time"

	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/internal/pagination"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   int64  `json:"requestId"`
}

func (r createReq) toInput(ownerID int64) item.CreateItemInput {
	return item.CreateItemInput{
		OwnerID:     ownerID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		RequestID:   r.RequestID,
	}
}

type updateReq struct {
	id int64

	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

func (r updateReq) toInput(ownerID int64) item.UpdateItemInput {
	return item.UpdateItemInput{
		OwnerID:     ownerID,
		ItemID:      r.id,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type searchReq struct {
	Text string `form:"text"`
	From *int   `form:"from"`
	Size *int   `form:"size"`
}

func (r searchReq) page() pagination.Params {
	return pagination.New(r.From, r.Size)
}

type commentReq struct {
	itemID int64

	Text string `json:"text"`
}

func (r commentReq) toInput(authorID int64) item.CreateCommentInput {
	return item.CreateCommentInput{
		AuthorID: authorID,
		ItemID:   r.itemID,
		Text:     r.Text,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId,omitempty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func newItemListResp(items []model.Item) []itemResp {
	resp := make([]itemResp, len(items))
	for i, it := range items {
		resp[i] = newItemResp(it)
	}
	return resp
}

// bookingBriefResp is the shortened booking view embedded in item details.
type bookingBriefResp struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func newBookingBriefResp(b *model.Booking) *bookingBriefResp {
	if b == nil {
		return nil
	}
	return &bookingBriefResp{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

type commentResp struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

func newCommentResp(cm model.Comment) commentResp {
	return commentResp{
		ID:         cm.ID,
		ItemID:     cm.ItemID,
		AuthorName: cm.AuthorName,
		Text:       cm.Text,
		Created:    cm.Created,
	}
}

func newCommentListResp(comments []model.Comment) []commentResp {
	resp := make([]commentResp, len(comments))
	for i, cm := range comments {
		resp[i] = newCommentResp(cm)
	}
	return resp
}

type itemDetailResp struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   int64             `json:"requestId,omitempty"`
	LastBooking *bookingBriefResp `json:"lastBooking"`
	NextBooking *bookingBriefResp `json:"nextBooking"`
	Comments    []commentResp     `json:"comments"`
}

func newItemDetailResp(d item.ItemDetail) itemDetailResp {
	return itemDetailResp{
		ID:          d.Item.ID,
		Name:        d.Item.Name,
		Description: d.Item.Description,
		Available:   d.Item.Available,
		RequestID:   d.Item.RequestID,
		LastBooking: newBookingBriefResp(d.LastBooking),
		NextBooking: newBookingBriefResp(d.NextBooking),
		Comments:    newCommentListResp(d.Comments),
	}
}

func newItemDetailListResp(details []item.ItemDetail) []itemDetailResp {
	resp := make([]itemDetailResp, len(details))
	for i, d := range details {
		resp[i] = newItemDetailResp(d)
	}
	return resp
}
