package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pagination"
)

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

type pagingReq struct {
	From *int `form:"from"`
	Size *int `form:"size"`
}

func (req pagingReq) page() pagination.Params {
	return pagination.New(req.From, req.Size)
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "item.delivery.http.processCreateReq: %v", err)
		return createReq{}, errWrongBody
	}

	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "item.delivery.http.processUpdateReq: %v", err)
		return updateReq{}, errWrongBody
	}

	id, err := pathID(c, "itemId")
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.processUpdateReq: %v", err)
		return updateReq{}, errWrongQuery
	}
	req.id = id

	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (pagingReq, error) {
	ctx := c.Request.Context()

	var req pagingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "item.delivery.http.processListReq: %v", err)
		return pagingReq{}, errWrongQuery
	}

	return req, nil
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "item.delivery.http.processSearchReq: %v", err)
		return searchReq{}, errWrongQuery
	}

	return req, nil
}

func (h *handler) processCommentReq(c *gin.Context) (commentReq, error) {
	ctx := c.Request.Context()

	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "item.delivery.http.processCommentReq: %v", err)
		return commentReq{}, errWrongBody
	}

	id, err := pathID(c, "itemId")
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.processCommentReq: %v", err)
		return commentReq{}, errWrongQuery
	}
	req.itemID = id

	return req, nil
}
