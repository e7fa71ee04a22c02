package item

import "shareit/internal/model"

// CreateItemInput carries the fields for listing a new item.
// Available is a pointer so an absent value can be told apart from false.
type CreateItemInput struct {
	OwnerID     int64
	Name        string
	Description string
	Available   *bool
	RequestID   int64
}

// UpdateItemInput carries a partial update: nil fields keep the stored value.
type UpdateItemInput struct {
	OwnerID     int64
	ItemID      int64
	Name        *string
	Description *string
	Available   *bool
}

// CreateCommentInput carries the fields for commenting on an item.
type CreateCommentInput struct {
	AuthorID int64
	ItemID   int64
	Text     string
}

// ItemDetail is an item together with its viewer-dependent attachments:
// comments for everyone, last/next booking for the owner only.
type ItemDetail struct {
	Item        model.Item
	LastBooking *model.Booking
	NextBooking *model.Booking
	Comments    []model.Comment
}
