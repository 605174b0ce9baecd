package usecase

import (
	"consulate-console/internal/resource/repository"
	"consulate-console/internal/resource/schema"
	"consulate-console/pkg/log"
)

// Messages are the per-resource human strings surfaced to the console UI.
type Messages struct {
	Created  string
	Updated  string
	Deleted  string
	NotFound string
}

// Checker runs payload-specific checks beyond struct tags, e.g. upload
// constraints. Payload types that carry files implement it.
type Checker interface {
	Check() error
}

// Action is the server-action layer for one resource: validate first, then
// call the repository, and translate every outcome into either typed read
// errors or a uniform Result. Mutations never propagate a raw error.
type Action[T any] struct {
	name      string
	validator *schema.Validator
	repo      repository.Repository[T]
	messages  Messages
	l         log.Logger
}

// New creates the action layer for one resource.
func New[T any](name string, validator *schema.Validator, repo repository.Repository[T], messages Messages, l log.Logger) *Action[T] {
	return &Action[T]{
		name:      name,
		validator: validator,
		repo:      repo,
		messages:  messages,
		l:         l,
	}
}
