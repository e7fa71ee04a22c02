package item

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/pagination"
)

type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (model.Item, error)
	Update(ctx context.Context, input UpdateItemInput) (model.Item, error)

	// GetByID returns the item with comments; the owner additionally sees
	// the last finished and next upcoming approved bookings.
	GetByID(ctx context.Context, viewerID, itemID int64) (ItemDetail, error)
	ListByOwner(ctx context.Context, ownerID int64, page pagination.Params) ([]ItemDetail, error)

	// Search matches available items by name or description substring,
	// case-insensitive. Blank text yields an empty result, not an error.
	Search(ctx context.Context, text string, page pagination.Params) ([]model.Item, error)

	SaveComment(ctx context.Context, input CreateCommentInput) (model.Comment, error)
}
