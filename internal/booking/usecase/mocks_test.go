package usecase

import (
	"context"

	"shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
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

// Mock booking repository with overridable methods
type mockBookingRepo struct {
	createFunc       func(opt repository.CreateBookingOptions) (model.Booking, error)
	getOneFunc       func(opt repository.GetOneBookingOptions) (model.Booking, error)
	listFunc         func(opt repository.ListBookingsOptions) ([]model.Booking, error)
	updateStatusFunc func(opt repository.UpdateBookingStatusOptions) (model.Booking, error)
}

func (m *mockBookingRepo) CreateBooking(ctx context.Context, opt repository.CreateBookingOptions) (model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Booking{ID: 1, ItemID: opt.ItemID, BookerID: opt.BookerID, Status: opt.Status, Start: opt.Start, End: opt.End}, nil
}

func (m *mockBookingRepo) GetOneBooking(ctx context.Context, opt repository.GetOneBookingOptions) (model.Booking, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Booking{}, nil
}

func (m *mockBookingRepo) ListBookings(ctx context.Context, opt repository.ListBookingsOptions) ([]model.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockBookingRepo) UpdateBookingStatus(ctx context.Context, opt repository.UpdateBookingStatusOptions) (model.Booking, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(opt)
	}
	return model.Booking{ID: opt.ID, Status: opt.Status}, nil
}

// Mock item repository keyed by id
type mockItemRepo struct {
	items map[int64]model.Item
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt itemRepo.CreateItemOptions) (model.Item, error) {
	return model.Item{}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt itemRepo.GetOneItemOptions) (model.Item, error) {
	return m.items[opt.ID], nil
}

func (m *mockItemRepo) ListItemsByOwner(ctx context.Context, opt itemRepo.ListItemsByOwnerOptions) ([]model.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) ListItemsByRequestID(ctx context.Context, requestID int64) ([]model.Item, error) {
	return nil, nil
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
