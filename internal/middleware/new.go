package middleware

import (
	"shareit/pkg/log"
)

// Middleware bundles the gin middlewares shared by the server's routes.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
