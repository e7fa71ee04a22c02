package user

import "errors"

var (
	// ErrEmailInvalid covers a missing, blank or malformed email, and an
	// email already used by another user.
	ErrEmailInvalid = errors.New("Email error")

	ErrUserNotFound = errors.New("Unknown user id")
)
