package repository

import (
	"context"
	"net/url"

	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/pkg/restclient"
)

//go:generate mockery --name Repository

// Repository is typed access to one upstream resource collection.
type Repository[T any] interface {
	List(ctx context.Context, opts ListOptions) (resource.Envelope[T], error)
	Get(ctx context.Context, id string) (T, error)
	Stats(ctx context.Context) (model.Stats, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id string, payload any) (T, error)
	Delete(ctx context.Context, id string) error
}

// ListOptions carries the filter values plus pagination for one list call.
type ListOptions struct {
	Filters url.Values
	Page    int
	Limit   int
}

// Multiparter is implemented by payloads that carry file uploads and must
// therefore be sent as multipart/form-data instead of JSON.
type Multiparter interface {
	MultipartForm() (*restclient.Form, error)
}
