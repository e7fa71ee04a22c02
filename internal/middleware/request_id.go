package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shareit/pkg/log"
)

// HeaderRequestID echoes the id assigned to each request.
const HeaderRequestID = "X-Request-Id"

// RequestID assigns a uuid to every request and threads it through the
// request context so pkg/log picks it up.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, reqID)
		c.Next()
	}
}
