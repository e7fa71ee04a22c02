package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Create booking
// @Description Requests a rental of someone else's available item; starts WAITING.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user ID"
// @Param       body             body   createReq true "Booking data"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.uc.Create(ctx, req.toInput(middleware.SharerID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(detail))
}

// Confirm godoc
// @Summary     Decide booking
// @Description The item's owner approves or rejects a waiting booking, once.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Acting user ID"
// @Param       bookingId        path   int  true "Booking ID"
// @Param       approved         query  bool true "Verdict"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /bookings/{bookingId} [PATCH]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	bookingID, approved, err := h.processConfirmReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.uc.Confirm(ctx, booking.ConfirmBookingInput{
		OwnerID:   middleware.SharerID(c),
		BookingID: bookingID,
		Approved:  approved,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(detail))
}

// Detail godoc
// @Summary     Get booking
// @Description Returns one booking; visible only to its booker or the item's owner.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       bookingId        path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.ErrorResp
// @Router      /bookings/{bookingId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	detail, err := h.uc.GetByID(ctx, middleware.SharerID(c), bookingID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(detail))
}

// ListByBooker godoc
// @Summary     List own bookings
// @Description Pages through the acting user's bookings filtered by state, newest start first.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param       from  query int    false "Offset of the first record"
// @Param       size  query int    false "Page size"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /bookings [GET]
func (h *handler) ListByBooker(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	state, err := booking.ParseState(req.State)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	details, err := h.uc.ListByBooker(ctx, middleware.SharerID(c), state, req.page())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByBooker: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingListResp(details))
}

// ListByOwner godoc
// @Summary     List bookings of own items
// @Description Pages through the bookings of every item the acting user shares.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param       from  query int    false "Offset of the first record"
// @Param       size  query int    false "Page size"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /bookings/owner [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	state, err := booking.ParseState(req.State)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	details, err := h.uc.ListByOwner(ctx, middleware.SharerID(c), state, req.page())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingListResp(details))
}
