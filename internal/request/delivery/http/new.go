package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/request"
	"shareit/pkg/log"
)

// Handler is the public interface for the item request HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	ListOwn(c *gin.Context)
	ListOthers(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc request.UseCase
}

// New creates a new HTTP handler for the item request domain.
func New(l log.Logger, uc request.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
