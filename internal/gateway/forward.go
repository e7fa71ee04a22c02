package gateway

import (
	"io"

	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// validator inspects a request's shape before it is forwarded. A non-nil
// error stops the request at the gateway with 400 and the error's message.
type validator func(c *gin.Context, body []byte) error

// forward builds a handler that validates and then replays the request
// against the server, returning the server's status and body verbatim.
func (gw *Gateway) forward(validate validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			gw.l.Errorf(ctx, "gateway.forward read body: %v", err)
			response.BadRequest(c, "wrong body")
			return
		}

		if validate != nil {
			if err := validate(c, body); err != nil {
				response.BadRequest(c, err.Error())
				return
			}
		}

		res, err := gw.client.Forward(ctx,
			c.Request.Method, c.Request.URL.Path, c.Request.URL.Query(),
			middleware.SharerID(c), body,
		)
		if err != nil {
			gw.l.Errorf(ctx, "gateway.forward %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			response.Error(c, err)
			return
		}

		gw.l.Infof(ctx, "gateway %s %s -> %d", c.Request.Method, c.Request.URL.Path, res.Status)

		contentType := res.ContentType
		if contentType == "" {
			contentType = "application/json; charset=utf-8"
		}
		c.Data(res.Status, contentType, res.Body)
	}
}
