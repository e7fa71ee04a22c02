package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// CreateUser inserts a new User row and returns the created entity.
// A duplicate email surfaces as ErrDuplicateEmail.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	var user model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email).Scan(
		&user.ID, &user.Name, &user.Email,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return user, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := buildGetOneUserQuery(opt)
	query := fmt.Sprintf("SELECT id, name, email FROM users WHERE %s LIMIT 1", mods)

	var user model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Email)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

// ListUsers returns every user ordered by id.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name, email FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUser overwrites a User row and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	const query = `
		UPDATE users
		SET name = $1, email = $2
		WHERE id = $3
		RETURNING id, name, email`

	var user model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.ID).Scan(
		&user.ID, &user.Name, &user.Email,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return user, nil
}

// DeleteUser removes a User by ID.
func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// buildGetOneUserQuery builds WHERE clause + args for GetOneUser.
func buildGetOneUserQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
