// Package rest implements the resource repository against the upstream
// content backend's REST API.
package rest

import (
	"context"
	"net/url"
	"strconv"

	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/internal/resource/repository"
	"consulate-console/pkg/log"
	"consulate-console/pkg/restclient"
)

type implRepository[T any] struct {
	client   *restclient.Client
	basePath string
	l        log.Logger
}

// New creates a REST repository for one resource base path.
func New[T any](client *restclient.Client, basePath string, l log.Logger) repository.Repository[T] {
	return &implRepository[T]{
		client:   client,
		basePath: basePath,
		l:        l,
	}
}

func (r *implRepository[T]) List(ctx context.Context, opts repository.ListOptions) (resource.Envelope[T], error) {
	q := url.Values{}
	for name, values := range opts.Filters {
		for _, v := range values {
			q.Add(name, v)
		}
	}
	// Pagination is always explicit upstream, even when the console URL
	// omitted the defaults.
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("limit", strconv.Itoa(opts.Limit))

	var env resource.Envelope[T]
	if err := r.client.Get(ctx, r.basePath, q, &env); err != nil {
		r.l.Errorf(ctx, "rest repository: list %s: %v", r.basePath, err)
		return resource.Envelope[T]{}, err
	}

	// Some upstream resources drift on meta naming or omit the page/limit
	// echo entirely. The values this request asked for are authoritative;
	// only the total comes from upstream, and total_pages is recomputed.
	env.Meta = resource.NewMeta(opts.Page, opts.Limit, env.Meta.Total)
	if env.Data == nil {
		env.Data = []T{}
	}
	return env, nil
}

func (r *implRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	if err := r.client.Get(ctx, r.basePath+"/"+url.PathEscape(id), nil, &record); err != nil {
		if restclient.IsNotFound(err) {
			return record, resource.ErrNotFound
		}
		r.l.Errorf(ctx, "rest repository: get %s/%s: %v", r.basePath, id, err)
		return record, err
	}
	return record, nil
}

func (r *implRepository[T]) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	if err := r.client.Get(ctx, r.basePath+"/stats", nil, &stats); err != nil {
		r.l.Errorf(ctx, "rest repository: stats %s: %v", r.basePath, err)
		return model.Stats{}, err
	}
	return stats, nil
}

func (r *implRepository[T]) Create(ctx context.Context, payload any) (T, error) {
	var record T

	// Multipart only when the payload actually carries files; a nil form
	// means "send as JSON".
	if m, ok := payload.(repository.Multiparter); ok {
		form, err := m.MultipartForm()
		if err != nil {
			return record, err
		}
		if form != nil {
			if err := r.client.PostForm(ctx, r.basePath, form, &record); err != nil {
				r.l.Errorf(ctx, "rest repository: create %s (multipart): %v", r.basePath, err)
				return record, err
			}
			return record, nil
		}
	}

	if err := r.client.PostJSON(ctx, r.basePath, payload, &record); err != nil {
		r.l.Errorf(ctx, "rest repository: create %s: %v", r.basePath, err)
		return record, err
	}
	return record, nil
}

func (r *implRepository[T]) Update(ctx context.Context, id string, payload any) (T, error) {
	var record T
	path := r.basePath + "/" + url.PathEscape(id)

	if m, ok := payload.(repository.Multiparter); ok {
		form, err := m.MultipartForm()
		if err != nil {
			return record, err
		}
		if form != nil {
			if err := r.client.PutForm(ctx, path, form, &record); err != nil {
				if restclient.IsNotFound(err) {
					return record, resource.ErrNotFound
				}
				r.l.Errorf(ctx, "rest repository: update %s/%s (multipart): %v", r.basePath, id, err)
				return record, err
			}
			return record, nil
		}
	}

	if err := r.client.PutJSON(ctx, path, payload, &record); err != nil {
		if restclient.IsNotFound(err) {
			return record, resource.ErrNotFound
		}
		r.l.Errorf(ctx, "rest repository: update %s/%s: %v", r.basePath, id, err)
		return record, err
	}
	return record, nil
}

func (r *implRepository[T]) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, r.basePath+"/"+url.PathEscape(id)); err != nil {
		if restclient.IsNotFound(err) {
			return resource.ErrNotFound
		}
		r.l.Errorf(ctx, "rest repository: delete %s/%s: %v", r.basePath, id, err)
		return err
	}
	return nil
}
