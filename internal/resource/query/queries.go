package query

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/internal/resource/usecase"
	"consulate-console/pkg/restclient"
)

// retryBackoff is the pause before the single read retry.
const retryBackoff = 200 * time.Millisecond

// Queries is the cached read/write access for one resource. Reads go
// through the Store; writes go straight to the action and invalidate on
// success.
type Queries[T any] struct {
	name   string
	store  *Store
	action *usecase.Action[T]
}

// NewQueries wires one resource's action layer to the shared store.
func NewQueries[T any](name string, store *Store, action *usecase.Action[T]) *Queries[T] {
	return &Queries[T]{
		name:   name,
		store:  store,
		action: action,
	}
}

// List returns the page for the given filter state, from cache when fresh.
// Concurrent identical requests share one fetch. A transport failure (5xx
// or network) is retried once; if the refetch still fails the error
// surfaces, so the caller owns the error state and the manual retry.
func (q *Queries[T]) List(ctx context.Context, filters *resource.Filters) (resource.Envelope[T], error) {
	key := listKey(q.name, filters.Key())

	if cached, ok := q.store.entries.Get(key); ok {
		return cached.(resource.Envelope[T]), nil
	}

	fetched, err, _ := q.store.group.Do(key, func() (any, error) {
		env, err := q.fetchList(ctx, filters)
		if err != nil {
			return nil, err
		}
		q.store.entries.Add(key, env)
		return env, nil
	})
	if err != nil {
		return resource.Envelope[T]{}, err
	}

	return fetched.(resource.Envelope[T]), nil
}

// Detail returns one record by ID for edit-form pre-population. Empty IDs
// are rejected without touching the cache or the network.
func (q *Queries[T]) Detail(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, resource.ErrEmptyID
	}

	key := detailKey(q.name, id)
	if cached, ok := q.store.entries.Get(key); ok {
		return cached.(T), nil
	}

	fetched, err, _ := q.store.group.Do(key, func() (any, error) {
		record, err := q.withRetry(ctx, func(ctx context.Context) (any, error) {
			return q.action.Detail(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		q.store.entries.Add(key, record)
		return record, nil
	})
	if err != nil {
		return zero, err
	}
	return fetched.(T), nil
}

// Stats returns the aggregate counters, cached under their own window.
func (q *Queries[T]) Stats(ctx context.Context) (model.Stats, error) {
	key := statsKey(q.name)
	if cached, ok := q.store.stats.Get(key); ok {
		return cached.(model.Stats), nil
	}

	fetched, err, _ := q.store.group.Do(key, func() (any, error) {
		stats, err := q.withRetry(ctx, func(ctx context.Context) (any, error) {
			return q.action.Stats(ctx)
		})
		if err != nil {
			return nil, err
		}
		q.store.stats.Add(key, stats)
		return stats, nil
	})
	if err != nil {
		return model.Stats{}, err
	}
	return fetched.(model.Stats), nil
}

func (q *Queries[T]) fetchList(ctx context.Context, filters *resource.Filters) (resource.Envelope[T], error) {
	fetched, err := q.withRetry(ctx, func(ctx context.Context) (any, error) {
		return q.action.List(ctx, filters)
	})
	if err != nil {
		return resource.Envelope[T]{}, err
	}
	return fetched.(resource.Envelope[T]), nil
}

// withRetry runs a read once, plus a single extra attempt when the failure
// was transport-level. Client errors surface immediately.
func (q *Queries[T]) withRetry(ctx context.Context, fetch func(ctx context.Context) (any, error)) (any, error) {
	var result any
	err := retry.Do(ctx, retry.WithMaxRetries(1, retry.NewConstant(retryBackoff)), func(ctx context.Context) error {
		var ferr error
		result, ferr = fetch(ctx)
		if ferr != nil && restclient.IsRetryable(ferr) {
			return retry.RetryableError(ferr)
		}
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
