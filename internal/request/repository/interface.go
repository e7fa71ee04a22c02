package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the item request domain data store.
type Repository interface {
	RequestRepository
}

// RequestRepository defines all data access methods for the ItemRequest entity.
type RequestRepository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.ItemRequest, error)
	GetOneRequest(ctx context.Context, opt GetOneRequestOptions) (model.ItemRequest, error)
	ListRequestsByRequester(ctx context.Context, opt ListRequestsByRequesterOptions) ([]model.ItemRequest, error)
	ListRequestsExcluding(ctx context.Context, opt ListRequestsExcludingOptions) ([]model.ItemRequest, error)
}
