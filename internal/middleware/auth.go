package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"consulate-console/internal/model"
	"consulate-console/pkg/response"
)

// Auth validates the Bearer JWT and attaches the actor to the context.
// Disabled entirely in development when auth.disabled is set.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.auth.Disabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return []byte(m.auth.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			m.l.Warnf(c.Request.Context(), "auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(actorKey, Actor{
			ID:    stringClaim(claims, "sub"),
			Email: stringClaim(claims, "email"),
			Role:  model.UserRole(stringClaim(claims, "role")),
		})
		c.Next()
	}
}

// RequireRole gates a route to one console role; ADMIN always passes.
func (m Middleware) RequireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.auth.Disabled {
			c.Next()
			return
		}

		actor, ok := ActorFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if actor.Role != role && actor.Role != model.RoleAdmin {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
