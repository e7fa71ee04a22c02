package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every item route acts on behalf of the X-Sharer-User-Id user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Sharer(), h.Create)
	rg.GET("", mw.Sharer(), h.List)
	rg.GET("/search", mw.Sharer(), h.Search)
	rg.GET("/:itemId", mw.Sharer(), h.Detail)
	rg.PATCH("/:itemId", mw.Sharer(), h.Update)
	rg.POST("/:itemId/comment", mw.Sharer(), h.SaveComment)
}
