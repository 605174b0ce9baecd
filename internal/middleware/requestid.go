package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulate-console/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, reused from the incoming
// header when the proxy already set one. The ID travels with the request
// context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.CtxWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
