package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

// ErrorResp is the error body contract: {"error": "<message>"}.
type ErrorResp struct {
	Error string `json:"error"`
}

// OK sends 200 JSON with the payload as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error renders an error. HTTPError values keep their status code and
// message; anything else is an internal error and the message is not leaked.
func Error(c *gin.Context, err error) {
	var httpErr pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, ErrorResp{Error: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: "Internal server error"})
}

// BadRequest sends 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResp{Error: message})
}
