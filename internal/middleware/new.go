package middleware

import (
	"context"

	"travel-planner/config"
	"travel-planner/internal/model"
	"travel-planner/pkg/log"
)

type Middleware struct {
	l         log.Logger
	jwtSecret []byte
	// headerIdentity lets X-User-ID stand in for a token when no secret is configured.
	headerIdentity bool
	limiter        *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	mw := Middleware{
		l:         l,
		jwtSecret: []byte(cfg.Auth.JWTSecret),
		limiter:   newRateLimiter(cfg.RateLimit.RequestsPerMin),
	}
	if cfg.Auth.JWTSecret == "" {
		if model.Environment(cfg.Environment.Name) == model.EnvironmentProduction {
			l.Warnf(context.Background(), "middleware.New: auth.jwt_secret is empty, every authenticated route will reject requests")
		} else {
			mw.headerIdentity = true
			l.Warnf(context.Background(), "middleware.New: auth.jwt_secret is empty, trusting the %s header", HeaderUserID)
		}
	}
	return mw
}
