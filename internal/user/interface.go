package user

import (
	"context"

	"shareit/internal/model"
)

type UseCase interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, input CreateUserInput) (model.User, error)
	Update(ctx context.Context, input UpdateUserInput) (model.User, error)
	Delete(ctx context.Context, id int64) error
}
