package gateway

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"shareit/internal/gateway/client"
	"shareit/pkg/log"
)

// Gateway is the validating edge in front of the ShareIt server. It rejects
// malformed requests before they cost a server round trip and forwards the
// rest untouched.
type Gateway struct {
	gin     *gin.Engine
	l       log.Logger
	port    int
	mode    string
	client  *client.Client
	limiter *rate.Limiter
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	ServerURL       string
	RateLimitPerSec int
	RateLimitBurst  int
}

// New creates a new Gateway instance.
func New(logger log.Logger, cfg Config) (*Gateway, error) {
	gin.SetMode(cfg.Mode)

	gw := &Gateway{
		l:       logger,
		gin:     gin.New(),
		port:    cfg.Port,
		mode:    cfg.Mode,
		client:  client.New(cfg.ServerURL),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst),
	}

	if err := gw.validate(cfg); err != nil {
		return nil, err
	}

	return gw, nil
}

func (gw *Gateway) validate(cfg Config) error {
	if gw.l == nil {
		return errors.New("logger is required")
	}
	if gw.mode == "" {
		return errors.New("mode is required")
	}
	if gw.port == 0 {
		return errors.New("port is required")
	}
	if cfg.ServerURL == "" {
		return errors.New("server url is required")
	}
	if cfg.RateLimitPerSec <= 0 || cfg.RateLimitBurst <= 0 {
		return errors.New("rate limit is required")
	}
	return nil
}
