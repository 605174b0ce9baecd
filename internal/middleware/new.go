package middleware

import (
	"consulate-console/config"
	"consulate-console/internal/model"
	"consulate-console/pkg/log"

	"github.com/gin-gonic/gin"
)

const actorKey = "console-actor"

// Actor is the authenticated console account attached to a request.
type Actor struct {
	ID    string
	Email string
	Role  model.UserRole
}

// ActorFromContext returns the actor set by the Auth middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}

// Middleware bundles the cross-cutting request policies.
type Middleware struct {
	l       log.Logger
	auth    config.AuthConfig
	limiter *rateLimiter
}

func New(l log.Logger, auth config.AuthConfig, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		auth:    auth,
		limiter: newRateLimiter(rl.PerMin),
	}
}
