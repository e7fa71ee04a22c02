package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses an int64 path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// processCreateReq binds the create user request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update user request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := pathID(c, "userId")
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
