package http

import (
	"time"

	"shareit/internal/model"
	"shareit/internal/pagination"
	"shareit/internal/request"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description"`
}

func (r createReq) toInput(requesterID int64) request.CreateRequestInput {
	return request.CreateRequestInput{
		RequesterID: requesterID,
		Description: r.Description,
	}
}

type pagingReq struct {
	From *int `form:"from"`
	Size *int `form:"size"`
}

func (r pagingReq) page() pagination.Params {
	return pagination.New(r.From, r.Size)
}

// --- Response DTOs ---

type requestResp struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

func newRequestResp(rq model.ItemRequest) requestResp {
	return requestResp{
		ID:          rq.ID,
		Description: rq.Description,
		Created:     rq.Created,
	}
}

// answerResp is the shortened item view listed under a request.
type answerResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

type requestDetailResp struct {
	ID          int64        `json:"id"`
	Description string       `json:"description"`
	Created     time.Time    `json:"created"`
	Items       []answerResp `json:"items"`
}

func newRequestDetailResp(d request.RequestDetail) requestDetailResp {
	items := make([]answerResp, len(d.Items))
	for i, it := range d.Items {
		items[i] = answerResp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
		}
	}
	return requestDetailResp{
		ID:          d.Request.ID,
		Description: d.Request.Description,
		Created:     d.Request.Created,
		Items:       items,
	}
}

func newRequestDetailListResp(details []request.RequestDetail) []requestDetailResp {
	resp := make([]requestDetailResp, len(details))
	for i, d := range details {
		resp[i] = newRequestDetailResp(d)
	}
	return resp
}
