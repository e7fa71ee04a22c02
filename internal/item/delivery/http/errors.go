package http

import (
	"errors"
	"net/http"

	"shareit/internal/item"
	"shareit/internal/pagination"
	pkgErrors "shareit/pkg/errors"
)

var (
	errWrongBody  = errors.New("wrong body")
	errWrongQuery = errors.New("wrong query")
)

// mapError translates domain errors into HTTP errors carrying the original
// message verbatim.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrAvailabilityEmpty),
		errors.Is(err, item.ErrNameEmpty),
		errors.Is(err, item.ErrDescriptionEmpty),
		errors.Is(err, item.ErrCommentEmpty),
		errors.Is(err, item.ErrCommentNotAllowed),
		errors.Is(err, pagination.ErrNegativeFrom),
		errors.Is(err, pagination.ErrNonPositiveSize):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, item.ErrItemNotOwned),
		errors.Is(err, item.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return err
	}
}
