package usecase

import (
	"context"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock request repository with overridable methods
type mockRequestRepo struct {
	createFunc        func(opt repository.CreateRequestOptions) (model.ItemRequest, error)
	getOneFunc        func(opt repository.GetOneRequestOptions) (model.ItemRequest, error)
	listOwnFunc       func(opt repository.ListRequestsByRequesterOptions) ([]model.ItemRequest, error)
	listExcludingFunc func(opt repository.ListRequestsExcludingOptions) ([]model.ItemRequest, error)
}

func (m *mockRequestRepo) CreateRequest(ctx context.Context, opt repository.CreateRequestOptions) (model.ItemRequest, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.ItemRequest{ID: 1, Description: opt.Description, RequesterID: opt.RequesterID, Created: opt.Created}, nil
}

func (m *mockRequestRepo) GetOneRequest(ctx context.Context, opt repository.GetOneRequestOptions) (model.ItemRequest, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.ItemRequest{}, nil
}

func (m *mockRequestRepo) ListRequestsByRequester(ctx context.Context, opt repository.ListRequestsByRequesterOptions) ([]model.ItemRequest, error) {
	if m.listOwnFunc != nil {
		return m.listOwnFunc(opt)
	}
	return nil, nil
}

func (m *mockRequestRepo) ListRequestsExcluding(ctx context.Context, opt repository.ListRequestsExcludingOptions) ([]model.ItemRequest, error) {
	if m.listExcludingFunc != nil {
		return m.listExcludingFunc(opt)
	}
	return nil, nil
}

// Mock item repository answering requests from a fixed map
type mockItemRepo struct {
	byRequest map[int64][]model.Item
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt itemRepo.CreateItemOptions) (model.Item, error) {
	return model.Item{}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt itemRepo.GetOneItemOptions) (model.Item, error) {
	return model.Item{}, nil
}

func (m *mockItemRepo) ListItemsByOwner(ctx context.Context, opt itemRepo.ListItemsByOwnerOptions) ([]model.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) ListItemsByRequestID(ctx context.Context, requestID int64) ([]model.Item, error) {
	return m.byRequest[requestID], nil
}

func (m *mockItemRepo) SearchItems(ctx context.Context, opt itemRepo.SearchItemsOptions) ([]model.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt itemRepo.UpdateItemOptions) (model.Item, error) {
	return model.Item{}, nil
}

func (m *mockItemRepo) CreateComment(ctx context.Context, opt itemRepo.CreateCommentOptions) (model.Comment, error) {
	return model.Comment{}, nil
}

func (m *mockItemRepo) ListCommentsByItemID(ctx context.Context, itemID int64) ([]model.Comment, error) {
	return nil, nil
}

// Mock user repository keyed by id
type mockUserRepo struct {
	users map[int64]model.User
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt userRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (model.User, error) {
	return m.users[opt.ID], nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	return nil, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt userRepo.UpdateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return nil
}
