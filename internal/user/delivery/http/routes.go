package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// User registry mutations carry no X-Sharer-User-Id header, so no middleware
// is applied here.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:userId", h.Detail)
	rg.PATCH("/:userId", h.Update)
	rg.DELETE("/:userId", h.Delete)
}
