package http

import (
	"errors"
	"net/http"

	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates domain errors into HTTP errors carrying the original
// message verbatim.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailInvalid):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return err
	}
}
