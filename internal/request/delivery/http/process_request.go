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
		h.l.Errorf(ctx, "request.delivery.http.processCreateReq: %v", err)
		return createReq{}, errWrongBody
	}

	return req, nil
}

func (h *handler) processPagingReq(c *gin.Context) (pagingReq, error) {
	ctx := c.Request.Context()

	var req pagingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "request.delivery.http.processPagingReq: %v", err)
		return pagingReq{}, errWrongQuery
	}

	return req, nil
}
