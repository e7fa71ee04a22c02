package usecase

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// List returns every registered user.
func (uc *implUseCase) List(ctx context.Context) ([]model.User, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}

// GetByID retrieves a single user. Returns ErrUserNotFound when absent.
func (uc *implUseCase) GetByID(ctx context.Context, id int64) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByID GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// Create registers a new user. The email must look like an email and be
// unused; the pre-check is advisory, the store's unique constraint settles
// concurrent inserts.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (model.User, error) {
	if err := validateEmail(input.Email); err != nil {
		return model.User{}, err
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return model.User{}, err
	}
	if existing.ID != 0 {
		return model.User{}, user.ErrEmailInvalid
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return model.User{}, user.ErrEmailInvalid
		}
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return model.User{}, err
	}
	return created, nil
}

// Update applies a partial update: nil fields keep the stored value.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateUserInput) (model.User, error) {
	existing, err := uc.GetByID(ctx, input.ID)
	if err != nil {
		return model.User{}, err
	}

	name := existing.Name
	if input.Name != nil {
		name = *input.Name
	}
	email := existing.Email
	if input.Email != nil {
		if err := validateEmail(*input.Email); err != nil {
			return model.User{}, err
		}
		email = *input.Email
	}

	updated, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  name,
		Email: email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return model.User{}, user.ErrEmailInvalid
		}
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return model.User{}, err
	}
	return updated, nil
}

// Delete removes a user. Returns ErrUserNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return user.ErrEmailInvalid
	}
	return nil
}
