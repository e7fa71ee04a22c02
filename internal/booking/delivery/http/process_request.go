package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "booking.delivery.http.processCreateReq: %v", err)
		return createReq{}, errWrongBody
	}

	return req, nil
}

func (h *handler) processConfirmReq(c *gin.Context) (bookingID int64, approved bool, err error) {
	ctx := c.Request.Context()

	bookingID, err = pathID(c, "bookingId")
	if err != nil {
		h.l.Errorf(ctx, "booking.delivery.http.processConfirmReq: %v", err)
		return 0, false, errWrongQuery
	}

	approved, err = strconv.ParseBool(c.Query("approved"))
	if err != nil {
		h.l.Errorf(ctx, "booking.delivery.http.processConfirmReq: %v", err)
		return 0, false, errWrongQuery
	}

	return bookingID, approved, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "booking.delivery.http.processListReq: %v", err)
		return listReq{}, errWrongQuery
	}

	return req, nil
}
