// Package http is the Gin delivery layer of the resource module. One
// generic handler serves every resource; the catalog supplies the
// descriptor and the payload binder.
package http

import (
	"github.com/gin-gonic/gin"

	"consulate-console/internal/resource"
	"consulate-console/internal/resource/query"
	"consulate-console/pkg/log"
)

// Binder turns an incoming request body (JSON or multipart, depending on
// what the resource's schema declares) into the typed payload the action
// layer validates.
type Binder func(c *gin.Context) (any, error)

// Handler is the HTTP delivery for one resource.
type Handler[T any] struct {
	l    log.Logger
	q    *query.Queries[T]
	desc resource.Descriptor
	bind Binder
}

// New creates the HTTP handler for one resource.
func New[T any](l log.Logger, q *query.Queries[T], desc resource.Descriptor, bind Binder) *Handler[T] {
	return &Handler[T]{
		l:    l,
		q:    q,
		desc: desc,
		bind: bind,
	}
}
