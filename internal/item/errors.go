package item

import "errors"

var (
	ErrAvailabilityEmpty = errors.New("The availability field cannot be empty")
	ErrNameEmpty         = errors.New("The name field cannot be empty")
	ErrDescriptionEmpty  = errors.New("The description field cannot be empty")

	ErrItemNotFound = errors.New("Unknown item id")
	ErrUserNotFound = errors.New("User not found")

	// ErrItemNotOwned is reported for non-owner mutations. It deliberately
	// reads like not-found to hide the item's existence from non-owners.
	ErrItemNotOwned = errors.New("This item not found")

	ErrCommentEmpty      = errors.New("Comment text is empty")
	ErrCommentNotAllowed = errors.New("If you didn't rent this Item you can't leave the comment")
)
