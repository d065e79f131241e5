package middleware

import (
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

// Config tunes the shared middleware.
type Config struct {
	// RateLimitPerMin bounds planner requests per user; 0 disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
