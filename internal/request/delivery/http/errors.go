package http

import (
	"errors"
	"net/http"

	"shareit/internal/pagination"
	"shareit/internal/request"
	pkgErrors "shareit/pkg/errors"
)

var (
	errWrongBody  = errors.New("wrong body")
	errWrongQuery = errors.New("wrong query")
)

// mapError translates domain errors into HTTP errors carrying the original
// message verbatim.
func (h *handler) mapError(err error) error {
	var userNotFound request.UserNotFoundError
	if errors.As(err, &userNotFound) {
		return pkgErrors.NewHTTPError(http.StatusNotFound, userNotFound.Error())
	}

	switch {
	case errors.Is(err, request.ErrDescriptionEmpty),
		errors.Is(err, pagination.ErrNegativeFrom),
		errors.Is(err, pagination.ErrNonPositiveSize):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, request.ErrRequestNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return err
	}
}
