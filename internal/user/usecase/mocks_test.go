package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)     {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)     {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)    {}

// Mock user repository with overridable methods
type mockUserRepo struct {
	createFunc func(opt repository.CreateUserOptions) (model.User, error)
	getOneFunc func(opt repository.GetOneUserOptions) (model.User, error)
	listFunc   func() ([]model.User, error)
	updateFunc func(opt repository.UpdateUserOptions) (model.User, error)
	deleteFunc func(id int64) error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.User{ID: 1, Name: opt.Name, Email: opt.Email}, nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (model.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}
