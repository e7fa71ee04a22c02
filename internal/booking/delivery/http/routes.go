package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every booking route acts on behalf of the X-Sharer-User-Id user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Sharer(), h.Create)
	rg.GET("", mw.Sharer(), h.ListByBooker)
	rg.GET("/owner", mw.Sharer(), h.ListByOwner)
	rg.GET("/:bookingId", mw.Sharer(), h.Detail)
	rg.PATCH("/:bookingId", mw.Sharer(), h.Confirm)
}
