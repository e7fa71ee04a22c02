package gateway

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/item"
	"shareit/internal/pagination"
	"shareit/internal/user"
)

func queryCtx(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestValidateCreateUser(t *testing.T) {
	cases := []struct {
		body string
		want error
	}{
		{`{"name":"Anna","email":"anna@mail.com"}`, nil},
		{`{"name":"Anna","email":""}`, user.ErrEmailInvalid},
		{`{"name":"Anna","email":"no-at-sign"}`, user.ErrEmailInvalid},
		{`{broken`, errWrongBody},
	}
	for _, tc := range cases {
		if err := validateCreateUser(nil, []byte(tc.body)); !errors.Is(err, tc.want) {
			t.Errorf("body %s: expected %v, got %v", tc.body, tc.want, err)
		}
	}

	// Absent email on update passes; present invalid email fails.
	if err := validateUpdateUser(nil, []byte(`{"name":"Anna"}`)); err != nil {
		t.Errorf("update without email: unexpected %v", err)
	}
	if err := validateUpdateUser(nil, []byte(`{"email":"broken"}`)); !errors.Is(err, user.ErrEmailInvalid) {
		t.Errorf("update with bad email: expected ErrEmailInvalid, got %v", err)
	}
}

func TestValidateCreateItem(t *testing.T) {
	cases := []struct {
		body string
		want error
	}{
		{`{"name":"Drill","description":"d","available":true}`, nil},
		{`{"name":"Drill","description":"d"}`, item.ErrAvailabilityEmpty},
		{`{"name":" ","description":"d","available":true}`, item.ErrNameEmpty},
		{`{"name":"Drill","description":"","available":false}`, item.ErrDescriptionEmpty},
	}
	for _, tc := range cases {
		if err := validateCreateItem(nil, []byte(tc.body)); !errors.Is(err, tc.want) {
			t.Errorf("body %s: expected %v, got %v", tc.body, tc.want, err)
		}
	}
}

func TestValidateCreateBooking(t *testing.T) {
	start := time.Now().Add(time.Hour).Format(time.RFC3339)
	end := time.Now().Add(2 * time.Hour).Format(time.RFC3339)
	past := time.Now().Add(-time.Hour).Format(time.RFC3339)

	cases := []struct {
		name string
		body string
		want error
	}{
		{"Valid", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, start, end), nil},
		{"No Start", fmt.Sprintf(`{"itemId":1,"end":%q}`, end), booking.ErrStartEmpty},
		{"No End", fmt.Sprintf(`{"itemId":1,"start":%q}`, start), booking.ErrEndEmpty},
		{"Past Start", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, past, end), booking.ErrStartInPast},
		{"End Before Start", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, end, start), booking.ErrEndBeforeStart},
		{"Start Equals End", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, start, start), booking.ErrStartEqualsEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateCreateBooking(nil, []byte(tc.body)); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateBookingList(t *testing.T) {
	if err := validateBookingList(queryCtx("state=WAITING&from=0&size=10"), nil); err != nil {
		t.Errorf("valid listing: unexpected %v", err)
	}

	err := validateBookingList(queryCtx("state=SOMETHING"), nil)
	var unknown booking.UnknownStateError
	if !errors.As(err, &unknown) {
		t.Errorf("expected UnknownStateError, got %v", err)
	}

	if err := validateBookingList(queryCtx("from=-1"), nil); !errors.Is(err, pagination.ErrNegativeFrom) {
		t.Errorf("expected ErrNegativeFrom, got %v", err)
	}
	if err := validateBookingList(queryCtx("size=0"), nil); !errors.Is(err, pagination.ErrNonPositiveSize) {
		t.Errorf("expected ErrNonPositiveSize, got %v", err)
	}
}

func TestValidatePaging(t *testing.T) {
	cases := []struct {
		query string
		want  error
	}{
		{"", nil},
		{"from=0&size=20", nil},
		{"from=-5&size=10", pagination.ErrNegativeFrom},
		{"from=0&size=0", pagination.ErrNonPositiveSize},
		{"from=abc", pagination.ErrNegativeFrom},
	}
	for _, tc := range cases {
		if err := validatePaging(queryCtx(tc.query), nil); !errors.Is(err, tc.want) {
			t.Errorf("query %q: expected %v, got %v", tc.query, tc.want, err)
		}
	}
}

func TestValidateConfirmBooking(t *testing.T) {
	if err := validateConfirmBooking(queryCtx("approved=true"), nil); err != nil {
		t.Errorf("valid approved: unexpected %v", err)
	}
	if err := validateConfirmBooking(queryCtx("approved=maybe"), nil); !errors.Is(err, errWrongApproved) {
		t.Errorf("expected errWrongApproved, got %v", err)
	}
	if err := validateConfirmBooking(queryCtx(""), nil); !errors.Is(err, errWrongApproved) {
		t.Errorf("missing approved: expected errWrongApproved, got %v", err)
	}
}
