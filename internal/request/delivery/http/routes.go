package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every request route acts on behalf of the X-Sharer-User-Id user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Sharer(), h.Create)
	rg.GET("", mw.Sharer(), h.ListOwn)
	rg.GET("/all", mw.Sharer(), h.ListOthers)
	rg.GET("/:requestId", mw.Sharer(), h.Detail)
}
