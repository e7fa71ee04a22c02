package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

func (gw *Gateway) mapHandlers() error {
	mw := middleware.New(gw.l)

	gw.gin.Use(gin.Recovery())
	gw.gin.Use(mw.RequestID())
	gw.gin.Use(gw.rateLimit())

	gw.gin.GET("/health", gw.healthCheck)

	users := gw.gin.Group("/users")
	{
		users.GET("", gw.forward(nil))
		users.POST("", gw.forward(validateCreateUser))
		users.GET("/:userId", gw.forward(nil))
		users.PATCH("/:userId", gw.forward(validateUpdateUser))
		users.DELETE("/:userId", gw.forward(nil))
	}

	items := gw.gin.Group("/items", mw.Sharer())
	{
		items.POST("", gw.forward(validateCreateItem))
		items.GET("", gw.forward(validatePaging))
		items.GET("/search", gw.forward(validatePaging))
		items.GET("/:itemId", gw.forward(nil))
		items.PATCH("/:itemId", gw.forward(nil))
		items.POST("/:itemId/comment", gw.forward(validateCreateComment))
	}

	bookings := gw.gin.Group("/bookings", mw.Sharer())
	{
		bookings.POST("", gw.forward(validateCreateBooking))
		bookings.GET("", gw.forward(validateBookingList))
		bookings.GET("/owner", gw.forward(validateBookingList))
		bookings.GET("/:bookingId", gw.forward(nil))
		bookings.PATCH("/:bookingId", gw.forward(validateConfirmBooking))
	}

	requests := gw.gin.Group("/requests", mw.Sharer())
	{
		requests.POST("", gw.forward(validateCreateRequest))
		requests.GET("", gw.forward(validatePaging))
		requests.GET("/all", gw.forward(validatePaging))
		requests.GET("/:requestId", gw.forward(nil))
	}

	return nil
}

// rateLimit applies a process-wide token bucket to everything the gateway
// accepts.
func (gw *Gateway) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gw.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResp{
				Error: "Too many requests",
			})
			return
		}
		c.Next()
	}
}

func (gw *Gateway) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "shareit-gateway",
	})
}
