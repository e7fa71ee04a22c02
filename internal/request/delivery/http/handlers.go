package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Create item request
// @Description Posts a description of an item the acting user wants to rent.
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user ID"
// @Param       body             body   createReq true "Request data"
// @Success     200 {object} requestResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /requests [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.uc.Create(ctx, req.toInput(middleware.SharerID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(created))
}

// ListOwn godoc
// @Summary     List own requests
// @Description Pages through the acting user's requests with answering items, newest first.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       from query int false "Offset of the first record"
// @Param       size query int false "Page size"
// @Success     200 {array}  requestDetailResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPagingReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	details, err := h.uc.ListOwn(ctx, middleware.SharerID(c), req.page())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOwn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestDetailListResp(details))
}

// ListOthers godoc
// @Summary     Browse other users' requests
// @Description Pages through requests posted by others so the acting user can offer items.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       from query int false "Offset of the first record"
// @Param       size query int false "Page size"
// @Success     200 {array}  requestDetailResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPagingReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	details, err := h.uc.ListOthers(ctx, middleware.SharerID(c), req.page())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOthers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestDetailListResp(details))
}

// Detail godoc
// @Summary     Get item request
// @Description Returns one request with answering items; any known user may look.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       requestId        path   int true "Request ID"
// @Success     200 {object} requestDetailResp
// @Failure     404 {object} response.ErrorResp
// @Router      /requests/{requestId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, err := pathID(c, "requestId")
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	detail, err := h.uc.GetByID(ctx, middleware.SharerID(c), requestID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestDetailResp(detail))
}
