package model

import "time"

// Item is something a user offers for rent. RequestID links the item to the
// item request that inspired it; zero means none.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   int64
}

// Comment is feedback a past booker left on an item. AuthorName is a
// denormalized snapshot of the author's display name at creation time.
type Comment struct {
	ID         int64
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	Created    time.Time
}
