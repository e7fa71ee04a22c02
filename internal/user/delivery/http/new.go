package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/user"
	"shareit/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
