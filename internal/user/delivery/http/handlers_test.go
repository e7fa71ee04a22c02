package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/internal/user"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock use case with overridable methods
type mockUseCase struct {
	listFunc   func() ([]model.User, error)
	getFunc    func(id int64) (model.User, error)
	createFunc func(input user.CreateUserInput) (model.User, error)
	updateFunc func(input user.UpdateUserInput) (model.User, error)
	deleteFunc func(id int64) error
}

func (m *mockUseCase) List(ctx context.Context) ([]model.User, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockUseCase) GetByID(ctx context.Context, id int64) (model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.User{}, user.ErrUserNotFound
}

func (m *mockUseCase) Create(ctx context.Context, input user.CreateUserInput) (model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(input)
	}
	return model.User{ID: 1, Name: input.Name, Email: input.Email}, nil
}

func (m *mockUseCase) Update(ctx context.Context, input user.UpdateUserInput) (model.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(input)
	}
	return model.User{ID: input.ID}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func userRouter(uc user.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/users"), New(nopLogger{}, uc))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("malformed error body %q: %v", w.Body.String(), err)
	}
	return resp.Error
}

func TestCreateUserHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		r := userRouter(&mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/users", `{"name":"Anna","email":"anna@mail.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var resp struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("malformed body: %v", err)
		}
		if resp.ID != 1 || resp.Email != "anna@mail.com" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("Invalid Email Is 400", func(t *testing.T) {
		uc := &mockUseCase{
			createFunc: func(input user.CreateUserInput) (model.User, error) {
				return model.User{}, user.ErrEmailInvalid
			},
		}
		r := userRouter(uc)
		w := doJSON(t, r, http.MethodPost, "/users", `{"name":"Anna","email":"broken"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if errorBody(t, w) != "Email error" {
			t.Errorf("unexpected error message: %s", w.Body.String())
		}
	})
}

func TestGetUserHandler(t *testing.T) {
	t.Run("Unknown User Is 404", func(t *testing.T) {
		r := userRouter(&mockUseCase{})
		w := doJSON(t, r, http.MethodGet, "/users/99", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if errorBody(t, w) != "Unknown user id" {
			t.Errorf("unexpected error message: %s", w.Body.String())
		}
	})

	t.Run("Found", func(t *testing.T) {
		uc := &mockUseCase{
			getFunc: func(id int64) (model.User, error) {
				return model.User{ID: id, Name: "Anna", Email: "anna@mail.com"}, nil
			},
		}
		r := userRouter(uc)
		w := doJSON(t, r, http.MethodGet, "/users/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDeleteUserHandler(t *testing.T) {
	t.Run("Unknown User Is 404", func(t *testing.T) {
		uc := &mockUseCase{
			deleteFunc: func(id int64) error { return user.ErrUserNotFound },
		}
		r := userRouter(uc)
		w := doJSON(t, r, http.MethodDelete, "/users/99", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Deleted", func(t *testing.T) {
		r := userRouter(&mockUseCase{})
		w := doJSON(t, r, http.MethodDelete, "/users/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
