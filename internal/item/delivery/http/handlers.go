package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Create item
// @Description Lists a new item owned by the acting user.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user ID"
// @Param       body             body   createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /items [POST]
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

	response.OK(c, newItemResp(created))
}

// Update godoc
// @Summary     Update item
// @Description Partial update by the owner: absent fields keep their stored value.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user ID"
// @Param       itemId           path   int       true "Item ID"
// @Param       body             body   updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.ErrorResp
// @Router      /items/{itemId} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.uc.Update(ctx, req.toInput(middleware.SharerID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(updated))
}

// Detail godoc
// @Summary     Get item
// @Description Returns the item with comments; owners also see last/next bookings.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       itemId           path   int true "Item ID"
// @Success     200 {object} itemDetailResp
// @Failure     404 {object} response.ErrorResp
// @Router      /items/{itemId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := pathID(c, "itemId")
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	detail, err := h.uc.GetByID(ctx, middleware.SharerID(c), itemID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemDetailResp(detail))
}

// List godoc
// @Summary     List own items
// @Description Pages through the acting user's items with bookings and comments.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       from query int false "Offset of the first record"
// @Param       size query int false "Page size"
// @Success     200 {array}  itemDetailResp
// @Failure     400 {object} response.ErrorResp
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	details, err := h.uc.ListByOwner(ctx, middleware.SharerID(c), req.page())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemDetailListResp(details))
}

// Search godoc
// @Summary     Search items
// @Description Case-insensitive substring search over available items. Blank text yields an empty list.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user ID"
// @Param       text query string false "Search text"
// @Param       from query int    false "Offset of the first record"
// @Param       size query int    false "Page size"
// @Success     200 {array}  itemResp
// @Failure     400 {object} response.ErrorResp
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, err := h.uc.Search(ctx, req.Text, req.page())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemListResp(items))
}

// SaveComment godoc
// @Summary     Comment on item
// @Description Stores feedback from a booker whose approved booking already ended.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int        true "Acting user ID"
// @Param       itemId           path   int        true "Item ID"
// @Param       body             body   commentReq true "Comment text"
// @Success     200 {object} commentResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /items/{itemId}/comment [POST]
func (h *handler) SaveComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommentReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.uc.SaveComment(ctx, req.toInput(middleware.SharerID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommentResp(comment))
}
