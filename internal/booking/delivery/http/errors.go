package http

import (
	"errors"
	"net/http"

	"shareit/internal/booking"
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
	var unknownState booking.UnknownStateError
	if errors.As(err, &unknownState) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, unknownState.Error())
	}

	switch {
	case errors.Is(err, booking.ErrStartEmpty),
		errors.Is(err, booking.ErrEndEmpty),
		errors.Is(err, booking.ErrStartInPast),
		errors.Is(err, booking.ErrEndInPast),
		errors.Is(err, booking.ErrEndBeforeStart),
		errors.Is(err, booking.ErrStartEqualsEnd),
		errors.Is(err, booking.ErrItemIDInvalid),
		errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrAlreadyDecided),
		errors.Is(err, pagination.ErrNegativeFrom),
		errors.Is(err, pagination.ErrNonPositiveSize):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrOwnItem),
		errors.Is(err, booking.ErrUserNotFound),
		errors.Is(err, booking.ErrItemNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return err
	}
}
