package resource

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
	ErrEmptyID  = errors.New("id is required")
)
