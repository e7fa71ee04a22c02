package http

import (
	"shareit/internal/model"
	"shareit/internal/user"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r createReq) toInput() user.CreateUserInput {
	return user.CreateUserInput{
		Name:  r.Name,
		Email: r.Email,
	}
}

type updateReq struct {
	ID    int64   `json:"-"` // populated from URI param
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r updateReq) toInput() user.UpdateUserInput {
	return user.UpdateUserInput{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func newUserListResp(users []model.User) []userResp {
	resp := make([]userResp, len(users))
	for i, u := range users {
		resp[i] = newUserResp(u)
	}
	return resp
}
