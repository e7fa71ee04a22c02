package usecase

import (
	"context"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item/repository"
	"shareit/internal/model"
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

// Mock item+comment repository with overridable methods
type mockItemRepo struct {
	createFunc        func(opt repository.CreateItemOptions) (model.Item, error)
	getOneFunc        func(opt repository.GetOneItemOptions) (model.Item, error)
	listByOwnerFunc   func(opt repository.ListItemsByOwnerOptions) ([]model.Item, error)
	listByRequestFunc func(requestID int64) ([]model.Item, error)
	searchFunc        func(opt repository.SearchItemsOptions) ([]model.Item, error)
	updateFunc        func(opt repository.UpdateItemOptions) (model.Item, error)
	createCommentFunc func(opt repository.CreateCommentOptions) (model.Comment, error)
	listCommentsFunc  func(itemID int64) ([]model.Comment, error)
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Item{ID: 1, Name: opt.Name, Description: opt.Description, Available: opt.Available, OwnerID: opt.OwnerID, RequestID: opt.RequestID}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.Item, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Item{}, nil
}

func (m *mockItemRepo) ListItemsByOwner(ctx context.Context, opt repository.ListItemsByOwnerOptions) ([]model.Item, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(opt)
	}
	return nil, nil
}

func (m *mockItemRepo) ListItemsByRequestID(ctx context.Context, requestID int64) ([]model.Item, error) {
	if m.listByRequestFunc != nil {
		return m.listByRequestFunc(requestID)
	}
	return nil, nil
}

func (m *mockItemRepo) SearchItems(ctx context.Context, opt repository.SearchItemsOptions) ([]model.Item, error) {
	if m.searchFunc != nil {
		return m.searchFunc(opt)
	}
	return nil, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.Item, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Item{ID: opt.ID, Name: opt.Name, Description: opt.Description, Available: opt.Available}, nil
}

func (m *mockItemRepo) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	if m.createCommentFunc != nil {
		return m.createCommentFunc(opt)
	}
	return model.Comment{ID: 1, ItemID: opt.ItemID, AuthorID: opt.AuthorID, AuthorName: opt.AuthorName, Text: opt.Text, Created: opt.Created}, nil
}

func (m *mockItemRepo) ListCommentsByItemID(ctx context.Context, itemID int64) ([]model.Comment, error) {
	if m.listCommentsFunc != nil {
		return m.listCommentsFunc(itemID)
	}
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

// Mock booking repository with an overridable list
type mockBookingRepo struct {
	listFunc func(opt bookingRepo.ListBookingsOptions) ([]model.Booking, error)
}

func (m *mockBookingRepo) CreateBooking(ctx context.Context, opt bookingRepo.CreateBookingOptions) (model.Booking, error) {
	return model.Booking{}, nil
}

func (m *mockBookingRepo) GetOneBooking(ctx context.Context, opt bookingRepo.GetOneBookingOptions) (model.Booking, error) {
	return model.Booking{}, nil
}

func (m *mockBookingRepo) ListBookings(ctx context.Context, opt bookingRepo.ListBookingsOptions) ([]model.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockBookingRepo) UpdateBookingStatus(ctx context.Context, opt bookingRepo.UpdateBookingStatusOptions) (model.Booking, error) {
	return model.Booking{}, nil
}
