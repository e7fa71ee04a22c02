package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func sharerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(nopLogger{})
	r.GET("/probe", mw.Sharer(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": SharerID(c)})
	})
	return r
}

func TestSharer(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"Valid", "42", http.StatusOK},
		{"Missing", "", http.StatusBadRequest},
		{"Non-Numeric", "abc", http.StatusBadRequest},
		{"Zero", "0", http.StatusBadRequest},
		{"Negative", "-1", http.StatusBadRequest},
	}

	r := sharerRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set(HeaderSharerUserID, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Errorf("header %q: expected %d, got %d (%s)", tc.header, tc.code, w.Code, w.Body.String())
			}
		})
	}
}
