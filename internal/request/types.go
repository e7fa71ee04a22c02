package request

import "shareit/internal/model"

// CreateRequestInput carries the fields for posting a new item request.
type CreateRequestInput struct {
	RequesterID int64
	Description string
}

// RequestDetail is an item request with the items offered in answer.
type RequestDetail struct {
	Request model.ItemRequest
	Items   []model.Item
}
