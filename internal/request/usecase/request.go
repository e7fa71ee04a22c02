package usecase

import (
	"context"
	"strings"
	"time"

	"shareit/internal/model"
	"shareit/internal/pagination"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
)

// Create posts a new item request for a known user.
func (uc *implUseCase) Create(ctx context.Context, input request.CreateRequestInput) (model.ItemRequest, error) {
	if err := uc.checkUser(ctx, input.RequesterID); err != nil {
		return model.ItemRequest{}, err
	}
	if strings.TrimSpace(input.Description) == "" {
		return model.ItemRequest{}, request.ErrDescriptionEmpty
	}

	created, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		RequesterID: input.RequesterID,
		Description: input.Description,
		Created:     time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return model.ItemRequest{}, err
	}
	return created, nil
}

// ListOwn pages through the requester's requests with answering items
// attached, newest first.
func (uc *implUseCase) ListOwn(ctx context.Context, requesterID int64, page pagination.Params) ([]request.RequestDetail, error) {
	if err := uc.checkUser(ctx, requesterID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	requests, err := uc.repo.ListRequestsByRequester(ctx, repo.ListRequestsByRequesterOptions{
		RequesterID: requesterID,
		Limit:       page.Limit(),
		Offset:      page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOwn ListRequestsByRequester: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, requests)
}

// ListOthers pages through requests posted by other users, oldest first.
func (uc *implUseCase) ListOthers(ctx context.Context, viewerID int64, page pagination.Params) ([]request.RequestDetail, error) {
	if err := uc.checkUser(ctx, viewerID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	requests, err := uc.repo.ListRequestsExcluding(ctx, repo.ListRequestsExcludingOptions{
		RequesterID: viewerID,
		Limit:       page.Limit(),
		Offset:      page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOthers ListRequestsExcluding: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, requests)
}

// GetByID returns one request with answering items, visible to any known user.
func (uc *implUseCase) GetByID(ctx context.Context, viewerID, requestID int64) (request.RequestDetail, error) {
	if err := uc.checkUser(ctx, viewerID); err != nil {
		return request.RequestDetail{}, err
	}

	rq, err := uc.repo.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: requestID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByID GetOneRequest: %v", err)
		return request.RequestDetail{}, err
	}
	if rq.ID == 0 {
		return request.RequestDetail{}, request.ErrRequestNotFound
	}

	items, err := uc.items.ListItemsByRequestID(ctx, rq.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByID ListItemsByRequestID: %v", err)
		return request.RequestDetail{}, err
	}
	return request.RequestDetail{Request: rq, Items: items}, nil
}

// attachItems decorates each request with the items offered in answer.
func (uc *implUseCase) attachItems(ctx context.Context, requests []model.ItemRequest) ([]request.RequestDetail, error) {
	details := make([]request.RequestDetail, 0, len(requests))
	for _, rq := range requests {
		items, err := uc.items.ListItemsByRequestID(ctx, rq.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.attachItems ListItemsByRequestID: %v", err)
			return nil, err
		}
		details = append(details, request.RequestDetail{Request: rq, Items: items})
	}
	return details, nil
}

// checkUser fails with UserNotFoundError for an unknown user id.
func (uc *implUseCase) checkUser(ctx context.Context, userID int64) error {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkUser GetOneUser: %v", err)
		return err
	}
	if u.ID == 0 {
		return request.UserNotFoundError{ID: userID}
	}
	return nil
}
