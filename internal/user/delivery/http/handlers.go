package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// List godoc
// @Summary     List users
// @Description Returns every registered user.
// @Tags        Users
// @Produce     json
// @Success     200 {array}  userResp
// @Failure     500 {object} response.ErrorResp
// @Router      /users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserListResp(users))
}

// Detail godoc
// @Summary     Get user
// @Description Returns a single user by id.
// @Tags        Users
// @Produce     json
// @Param       userId path int true "User ID"
// @Success     200 {object} userResp
// @Failure     404 {object} response.ErrorResp
// @Router      /users/{userId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c, "userId")
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	u, err := h.uc.GetByID(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Create godoc
// @Summary     Create user
// @Description Registers a new user with a unique email.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     200 {object} userResp
// @Failure     400 {object} response.ErrorResp
// @Router      /users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Update godoc
// @Summary     Update user
// @Description Partial update: absent fields keep their stored value.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       userId path int       true "User ID"
// @Param       body   body updateReq true "Fields to update"
// @Success     200 {object} userResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /users/{userId} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Delete godoc
// @Summary     Delete user
// @Description Removes a user by id.
// @Tags        Users
// @Param       userId path int true "User ID"
// @Success     200
// @Failure     404 {object} response.ErrorResp
// @Router      /users/{userId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c, "userId")
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
