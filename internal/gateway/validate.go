package gateway

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/item"
	"shareit/internal/pagination"
	"shareit/internal/request"
	"shareit/internal/user"
)

var (
	errWrongBody     = errors.New("wrong body")
	errWrongApproved = errors.New("approved parameter must be a boolean")
)

// The gateway repeats the cheap shape checks with the same messages the
// server uses, so a rejected request reads identically from either tier.

func validateCreateUser(_ *gin.Context, body []byte) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errWrongBody
	}
	return checkEmail(req.Email)
}

func validateUpdateUser(_ *gin.Context, body []byte) error {
	var req struct {
		Email *string `json:"email"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errWrongBody
	}
	if req.Email != nil {
		return checkEmail(*req.Email)
	}
	return nil
}

func checkEmail(email string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return user.ErrEmailInvalid
	}
	return nil
}

func validateCreateItem(_ *gin.Context, body []byte) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Available   *bool  `json:"available"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errWrongBody
	}
	if req.Available == nil {
		return item.ErrAvailabilityEmpty
	}
	if strings.TrimSpace(req.Name) == "" {
		return item.ErrNameEmpty
	}
	if strings.TrimSpace(req.Description) == "" {
		return item.ErrDescriptionEmpty
	}
	return nil
}

func validateCreateComment(_ *gin.Context, body []byte) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errWrongBody
	}
	if strings.TrimSpace(req.Text) == "" {
		return item.ErrCommentEmpty
	}
	return nil
}

func validateCreateBooking(_ *gin.Context, body []byte) error {
	var req struct {
		Start *time.Time `json:"start"`
		End   *time.Time `json:"end"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errWrongBody
	}

	now := time.Now()
	switch {
	case req.Start == nil:
		return booking.ErrStartEmpty
	case req.End == nil:
		return booking.ErrEndEmpty
	case req.Start.Before(now):
		return booking.ErrStartInPast
	case req.End.Before(now):
		return booking.ErrEndInPast
	case req.End.Before(*req.Start):
		return booking.ErrEndBeforeStart
	case req.Start.Equal(*req.End):
		return booking.ErrStartEqualsEnd
	}
	return nil
}

func validateConfirmBooking(c *gin.Context, _ []byte) error {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		return errWrongApproved
	}
	return nil
}

func validateBookingList(c *gin.Context, _ []byte) error {
	if _, err := booking.ParseState(c.Query("state")); err != nil {
		return err
	}
	return validatePaging(c, nil)
}

func validateCreateRequest(_ *gin.Context, body []byte) error {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errWrongBody
	}
	if strings.TrimSpace(req.Description) == "" {
		return request.ErrDescriptionEmpty
	}
	return nil
}

func validatePaging(c *gin.Context, _ []byte) error {
	from, err := queryInt(c, "from")
	if err != nil {
		return pagination.ErrNegativeFrom
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return pagination.ErrNonPositiveSize
	}
	return pagination.New(from, size).Validate()
}

func queryInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
