package request

import (
	"errors"
	"fmt"
)

var (
	ErrDescriptionEmpty = errors.New("The description field cannot be empty")
	ErrRequestNotFound  = errors.New("Unknown item request id")
)

// UserNotFoundError is returned when the acting user id is unknown.
type UserNotFoundError struct {
	ID int64
}

func (e UserNotFoundError) Error() string {
	return fmt.Sprintf("User with id = %d not found", e.ID)
}
