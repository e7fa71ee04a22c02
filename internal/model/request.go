package model

import "time"

// ItemRequest is a user's public ask for an item that does not exist yet.
// Immutable after creation; matching items are a computed join, not stored.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}
