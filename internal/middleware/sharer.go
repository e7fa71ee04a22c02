package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// HeaderSharerUserID carries the acting user's id on every endpoint except
// user registry mutations.
const HeaderSharerUserID = "X-Sharer-User-Id"

const sharerIDKey = "sharer_id"

// Sharer requires a numeric X-Sharer-User-Id header and stores the id in the
// request context for handlers.
func (mw Middleware) Sharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerUserID)
		if raw == "" {
			response.BadRequest(c, "X-Sharer-User-Id header is required")
			c.Abort()
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(c, "X-Sharer-User-Id header is invalid")
			c.Abort()
			return
		}
		c.Set(sharerIDKey, id)
		c.Next()
	}
}

// SharerID returns the acting user's id extracted by Sharer.
func SharerID(c *gin.Context) int64 {
	return c.GetInt64(sharerIDKey)
}
