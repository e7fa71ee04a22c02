package repository

import "time"

// CreateItemOptions holds parameters for inserting a new Item.
// RequestID zero means the item answers no request.
type CreateItemOptions struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   int64
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsByOwnerOptions pages through one owner's items ordered by id.
type ListItemsByOwnerOptions struct {
	OwnerID int64
	Limit   int
	Offset  int
}

// SearchItemsOptions holds the free-text search parameters. Matching is a
// case-insensitive substring test against name or description, restricted to
// available items, ordered by id.
type SearchItemsOptions struct {
	Text   string
	Limit  int
	Offset int
}

// UpdateItemOptions holds the full target state of an Item; the use case
// resolves partial updates before calling the repository.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

// CreateCommentOptions holds parameters for inserting a new Comment.
type CreateCommentOptions struct {
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	Created    time.Time
}
