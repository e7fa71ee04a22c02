package repository

import "time"

// CreateRequestOptions holds parameters for inserting a new ItemRequest.
type CreateRequestOptions struct {
	RequesterID int64
	Description string
	Created     time.Time
}

// GetOneRequestOptions holds filter parameters for fetching a single
// ItemRequest.
type GetOneRequestOptions struct {
	ID int64
}

// ListRequestsByRequesterOptions pages through one user's requests,
// newest first.
type ListRequestsByRequesterOptions struct {
	RequesterID int64
	Limit       int
	Offset      int
}

// ListRequestsExcludingOptions pages through requests posted by everyone
// except one user, oldest first.
type ListRequestsExcludingOptions struct {
	RequesterID int64
	Limit       int
	Offset      int
}
