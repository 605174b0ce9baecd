package http

import (
	"github.com/gin-gonic/gin"

	"consulate-console/internal/middleware"
)

// RegisterRoutes maps the resource's verbs under /<name>.
// All routes are protected by the Auth middleware by convention; extra
// handlers (e.g. a role gate) run after it for the whole group.
func RegisterRoutes[T any](rg *gin.RouterGroup, h *Handler[T], mw middleware.Middleware, extra ...gin.HandlerFunc) {
	chain := append([]gin.HandlerFunc{mw.Auth()}, extra...)
	grp := rg.Group("/"+h.desc.Name, chain...)
	{
		grp.GET("", h.List)
		grp.GET("/stats", h.Stats)
		grp.GET("/:id", h.Detail)
		grp.POST("", h.Create)
		grp.PUT("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}
