package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the item domain data store.
// Comments live here because they are always created and read through items.
type Repository interface {
	ItemRepository
	CommentRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItemsByOwner(ctx context.Context, opt ListItemsByOwnerOptions) ([]model.Item, error)
	ListItemsByRequestID(ctx context.Context, requestID int64) ([]model.Item, error)
	SearchItems(ctx context.Context, opt SearchItemsOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
}

// CommentRepository defines all data access methods for the Comment entity.
type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	ListCommentsByItemID(ctx context.Context, itemID int64) ([]model.Comment, error)
}
