package user

// CreateUserInput carries the fields for registering a user.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput carries a partial update: nil fields keep the stored value.
type UpdateUserInput struct {
	ID    int64
	Name  *string
	Email *string
}
