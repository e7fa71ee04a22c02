package request

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/pagination"
)

type UseCase interface {
	Create(ctx context.Context, input CreateRequestInput) (model.ItemRequest, error)

	// ListOwn pages through the requester's own requests with answers,
	// newest first.
	ListOwn(ctx context.Context, requesterID int64, page pagination.Params) ([]RequestDetail, error)

	// ListOthers pages through requests posted by other users so the viewer
	// can find items to offer, oldest first.
	ListOthers(ctx context.Context, viewerID int64, page pagination.Params) ([]RequestDetail, error)

	GetByID(ctx context.Context, viewerID, requestID int64) (RequestDetail, error)
}
